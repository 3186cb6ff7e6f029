// Package inference implements the sentiment inference service: validate,
// classify, persist, respond.
package inference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/tastemood/internal/common"
	"github.com/Veraticus/tastemood/internal/model"
	"github.com/Veraticus/tastemood/internal/sentiment"
	"github.com/Veraticus/tastemood/internal/service"
)

// User-facing messages returned by the HTTP API.
const (
	MsgEmptyText      = "Text must not be empty."
	MsgClassifyFailed = "Error classifying text."
	MsgSaveFailed     = "Error saving sentiment data."
	MsgHistoryFailed  = "Error fetching sentiment history."
	MsgInvalidRequest = "Request body must be a JSON object with a \"text\" field."
)

// Service classifies text and logs every outcome to storage. It holds no
// per-request state and is safe for concurrent use if its dependencies are.
type Service struct {
	storage    service.Storage
	classifier service.Classifier
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock used to timestamp records.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a service over the given storage and classifier. The
// classifier is wrapped with sentiment.Safe.
func New(storage service.Storage, classifier service.Classifier, opts ...Option) *Service {
	s := &Service{
		storage:    storage,
		classifier: sentiment.Safe(classifier),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Classify validates text, classifies it and persists the outcome. When the
// write fails the computed prediction is discarded and ErrStorage returned.
func (s *Service) Classify(ctx context.Context, text string) (model.Prediction, error) {
	if strings.TrimSpace(text) == "" {
		return model.Prediction{}, common.NewUserError(MsgEmptyText, common.ErrValidation)
	}

	prediction, err := s.classifier.Classify(ctx, text)
	if err != nil {
		slog.Warn("Classification failed", "error", err, "text_length", len(text))
		return model.Prediction{}, common.NewUserError(MsgClassifyFailed, err)
	}

	record := &model.SentimentRecord{
		Text:      text,
		Label:     prediction.Label,
		Score:     prediction.Score,
		Timestamp: model.FormatTimestamp(s.now()),
	}

	if err := s.storage.SaveSentiment(ctx, record); err != nil {
		common.LogError(err, "Error while inserting data", common.Fields{
			"label": prediction.Label,
			"score": prediction.Score,
		})
		return model.Prediction{}, common.NewUserError(MsgSaveFailed, storageError(err))
	}

	slog.Debug("Stored sentiment",
		"id", record.ID,
		"label", record.Label,
		"score", record.Score)

	return prediction, nil
}

// ListHistory returns every stored record in insertion order.
func (s *Service) ListHistory(ctx context.Context) ([]model.SentimentRecord, error) {
	records, err := s.storage.ListSentiments(ctx)
	if err != nil {
		common.LogError(err, "Error while fetching data", nil)
		return nil, common.NewUserError(MsgHistoryFailed, storageError(err))
	}
	if records == nil {
		records = []model.SentimentRecord{}
	}
	return records, nil
}

func storageError(err error) error {
	if errors.Is(err, common.ErrStorage) {
		return err
	}
	return fmt.Errorf("%w: %w", common.ErrStorage, err)
}
