package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_AppendOnly(t *testing.T) {
	s := NewSession()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Entries())

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.Append(SessionEntry{Text: "first", Label: LabelPositive, Score: 0.9, CapturedAt: base})
	s.Append(SessionEntry{Text: "second", Label: LabelNegative, Score: 0.8, CapturedAt: base.Add(time.Minute)})

	entries := s.Entries()
	assert.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Text)
	assert.Equal(t, "second", entries[1].Text)

	// Mutating the returned slice must not touch the session.
	entries[0].Text = "changed"
	assert.Equal(t, "first", s.Entries()[0].Text)
}

func TestSession_Reset(t *testing.T) {
	var s Session
	s.Append(SessionEntry{Text: "x", Label: LabelPositive})
	s.Reset()
	assert.Equal(t, 0, s.Len())
}

func TestSession_ByCaptureTime(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewSession()
	s.Append(SessionEntry{Text: "late", CapturedAt: base.Add(2 * time.Minute)})
	s.Append(SessionEntry{Text: "early", CapturedAt: base})
	s.Append(SessionEntry{Text: "early-too", CapturedAt: base})

	ordered := s.ByCaptureTime()
	assert.Equal(t, []string{"early", "early-too", "late"}, []string{ordered[0].Text, ordered[1].Text, ordered[2].Text})
}

func TestSession_LabelCounts(t *testing.T) {
	s := NewSession()
	for _, label := range []string{LabelPositive, LabelNegative, LabelPositive, LabelNeutral, LabelNegative, LabelPositive} {
		s.Append(SessionEntry{Label: label})
	}

	assert.Equal(t, []LabelCount{
		{Label: LabelPositive, Count: 3},
		{Label: LabelNegative, Count: 2},
		{Label: LabelNeutral, Count: 1},
	}, s.LabelCounts())
}

func TestSessionEntry_Timestamp(t *testing.T) {
	e := SessionEntry{CapturedAt: time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)}
	assert.Equal(t, "2024-05-06 07:08:09", e.Timestamp())
}
