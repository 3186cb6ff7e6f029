package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/Veraticus/tastemood/internal/model"
)

// MockClassifier is a deterministic classifier for tests. Text containing a
// word from its negative list is NEGATIVE, everything else is POSITIVE.
type MockClassifier struct {
	Err      error
	Panic    any
	calls    []string
	Negative []string
	Score    float64
	mu       sync.Mutex
}

// NewMockClassifier creates a mock that answers with the given score.
func NewMockClassifier(score float64) *MockClassifier {
	return &MockClassifier{
		Score:    score,
		Negative: []string{"terrible", "awful", "rude", "cold"},
	}
}

// Classify records the call and returns the configured outcome.
func (m *MockClassifier) Classify(_ context.Context, text string) (model.Prediction, error) {
	m.mu.Lock()
	m.calls = append(m.calls, text)
	m.mu.Unlock()

	if m.Panic != nil {
		panic(m.Panic)
	}
	if m.Err != nil {
		return model.Prediction{}, m.Err
	}

	lower := strings.ToLower(text)
	for _, word := range m.Negative {
		if strings.Contains(lower, word) {
			return model.Prediction{Label: model.LabelNegative, Score: m.Score}, nil
		}
	}
	return model.Prediction{Label: model.LabelPositive, Score: m.Score}, nil
}

// Calls returns the texts the classifier was asked about.
func (m *MockClassifier) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// MockStorage is an in-memory service.Storage whose operations can be made
// to fail.
type MockStorage struct {
	SaveErr error
	ListErr error
	records []model.SentimentRecord
	mu      sync.Mutex
	nextID  int64
	closed  bool
}

// NewMockStorage creates an empty mock storage.
func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

// SaveSentiment stores a copy of record and assigns its ID.
func (m *MockStorage) SaveSentiment(_ context.Context, record *model.SentimentRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.nextID++
	record.ID = m.nextID
	m.records = append(m.records, *record)
	return nil
}

// ListSentiments returns the stored records in insertion order.
func (m *MockStorage) ListSentiments(_ context.Context) ([]model.SentimentRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]model.SentimentRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

// CountSentiments returns the number of stored records.
func (m *MockStorage) CountSentiments(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ListErr != nil {
		return 0, m.ListErr
	}
	return len(m.records), nil
}

// Close marks the storage closed.
func (m *MockStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockStorage) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
