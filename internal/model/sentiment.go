// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// TimestampLayout is the second-precision layout used for persisted and
// session timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// Well-known labels. The vocabulary belongs to the classifier backend, so
// these are not enforced anywhere.
const (
	LabelPositive = "POSITIVE"
	LabelNegative = "NEGATIVE"
	LabelNeutral  = "NEUTRAL"
)

// Prediction is the outcome of a single classification call.
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Validate checks that the prediction carries a label and a score in [0,1].
func (p *Prediction) Validate() error {
	if strings.TrimSpace(p.Label) == "" {
		return fmt.Errorf("label is required")
	}

	if math.IsNaN(p.Score) || p.Score < 0.0 || p.Score > 1.0 {
		return fmt.Errorf("score must be between 0.0 and 1.0, got %.2f", p.Score)
	}

	return nil
}

// SentimentRecord is one persisted classification outcome. Records are
// immutable once written.
type SentimentRecord struct {
	Text      string  `json:"text"`
	Label     string  `json:"sentiment_label"`
	Timestamp string  `json:"timestamp"`
	ID        int64   `json:"id"`
	Score     float64 `json:"sentiment_score"`
}

// Prediction returns the label and score of the record.
func (r SentimentRecord) Prediction() Prediction {
	return Prediction{Label: r.Label, Score: r.Score}
}

// FormatTimestamp renders t with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ParseTimestamp parses a timestamp written with TimestampLayout in the
// local time zone.
func ParseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, s, time.Local)
}
