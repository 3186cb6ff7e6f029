package sentiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/tastemood/internal/common"
	"github.com/Veraticus/tastemood/internal/model"
	"github.com/Veraticus/tastemood/internal/service"
)

type safeClassifier struct {
	inner service.Classifier
}

// Safe wraps a classifier so that errors, panics and out-of-range results
// are all reported as common.ErrClassification.
func Safe(inner service.Classifier) service.Classifier {
	if s, ok := inner.(*safeClassifier); ok {
		return s
	}
	return &safeClassifier{inner: inner}
}

func (s *safeClassifier) Classify(ctx context.Context, text string) (prediction model.Prediction, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Classifier panicked", "panic", r)
			prediction = model.Prediction{}
			err = fmt.Errorf("%w: classifier panicked: %v", common.ErrClassification, r)
		}
	}()

	prediction, err = s.inner.Classify(ctx, text)
	if err != nil {
		if errors.Is(err, common.ErrClassification) {
			return model.Prediction{}, err
		}
		return model.Prediction{}, fmt.Errorf("%w: %w", common.ErrClassification, err)
	}

	if verr := prediction.Validate(); verr != nil {
		return model.Prediction{}, fmt.Errorf("%w: %v", common.ErrClassification, verr)
	}

	return prediction, nil
}

// Close closes the wrapped classifier.
func (s *safeClassifier) Close() error {
	return Close(s.inner)
}
