package tui

import (
	"time"

	"github.com/Veraticus/tastemood/internal/model"
)

// predictionMsg carries the outcome of one submission back to Update.
type predictionMsg struct {
	capturedAt time.Time
	err        error
	text       string
	prediction model.Prediction
}
