package model

import (
	"sort"
	"time"
)

// SessionEntry is a client-side copy of a successful prediction, stamped
// with the client's own wall clock at submission.
type SessionEntry struct {
	CapturedAt time.Time
	Text       string
	Label      string
	Score      float64
}

// Timestamp returns the capture time in TimestampLayout.
func (e SessionEntry) Timestamp() string {
	return FormatTimestamp(e.CapturedAt)
}

// LabelCount is the number of session entries carrying a label.
type LabelCount struct {
	Label string
	Count int
}

// Session is an append-only list of entries owned by a single dashboard
// session. The zero value is ready to use; it is not safe for concurrent use.
type Session struct {
	entries []SessionEntry
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// Append adds an entry to the end of the session.
func (s *Session) Append(entry SessionEntry) {
	s.entries = append(s.entries, entry)
}

// Entries returns a copy of the entries in submission order.
func (s *Session) Entries() []SessionEntry {
	out := make([]SessionEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Session) Len() int {
	return len(s.entries)
}

// Reset drops every entry. Called when the session ends.
func (s *Session) Reset() {
	s.entries = nil
}

// ByCaptureTime returns the entries sorted by capture time. Entries captured
// at the same instant keep their submission order.
func (s *Session) ByCaptureTime() []SessionEntry {
	out := s.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CapturedAt.Before(out[j].CapturedAt)
	})
	return out
}

// LabelCounts returns the frequency of each label, most frequent first and
// alphabetical among ties.
func (s *Session) LabelCounts() []LabelCount {
	counts := make(map[string]int)
	for _, e := range s.entries {
		counts[e.Label]++
	}

	out := make([]LabelCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, LabelCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}
