// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/tastemood/internal/model"
)

// Storage defines the contract for our persistence layer.
// Records are append-only: there is no update or delete.
type Storage interface {
	// SaveSentiment persists a record and sets its ID.
	SaveSentiment(ctx context.Context, record *model.SentimentRecord) error
	// ListSentiments returns every record in insertion order.
	ListSentiments(ctx context.Context) ([]model.SentimentRecord, error)
	CountSentiments(ctx context.Context) (int, error)

	Close() error
}

// Classifier is the opaque sentiment capability: text in, top label and
// confidence out.
type Classifier interface {
	Classify(ctx context.Context, text string) (model.Prediction, error)
}
