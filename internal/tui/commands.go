package tui

import (
	"context"
	"time"

	"github.com/Veraticus/tastemood/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// boundPredict ties every request the dashboard makes to ctx, so canceling
// the program's context aborts an in-flight submission.
func boundPredict(ctx context.Context, predictor Predictor) func(string) (model.Prediction, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	return func(text string) (model.Prediction, error) {
		return predictor.Predict(ctx, text)
	}
}

// submit calls the service off the UI goroutine.
func (m Model) submit(text string, capturedAt time.Time) tea.Cmd {
	predict := m.predict
	return func() tea.Msg {
		prediction, err := predict(text)
		return predictionMsg{
			text:       text,
			prediction: prediction,
			err:        err,
			capturedAt: capturedAt,
		}
	}
}
