// Package storage provides the data persistence layer for the sentiment service.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/tastemood/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrNilParameter  = errors.New("parameter cannot be nil")
	ErrInvalidRecord = errors.New("invalid sentiment record")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRecord validates a record before it is inserted.
func validateRecord(record *model.SentimentRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record", ErrNilParameter)
	}
	if strings.TrimSpace(record.Text) == "" {
		return fmt.Errorf("%w: missing text", ErrInvalidRecord)
	}
	if strings.TrimSpace(record.Timestamp) == "" {
		return fmt.Errorf("%w: missing timestamp", ErrInvalidRecord)
	}
	prediction := record.Prediction()
	if err := prediction.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return nil
}
