package inference

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Veraticus/tastemood/internal/common"
	"github.com/Veraticus/tastemood/internal/model"
	"github.com/Veraticus/tastemood/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 6, 1, 19, 30, 15, 0, time.Local)

func fixedClock() time.Time { return fixedTime }

func TestService_Classify(t *testing.T) {
	store := testutil.SetupTestDB(t)
	classifier := testutil.NewMockClassifier(0.95)
	svc := New(store, classifier, WithClock(fixedClock))
	ctx := context.Background()

	got, err := svc.Classify(ctx, "The soup was amazing")
	require.NoError(t, err)
	assert.Equal(t, model.Prediction{Label: model.LabelPositive, Score: 0.95}, got)

	history, err := svc.ListHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, int64(1), history[0].ID)
	assert.Equal(t, "The soup was amazing", history[0].Text)
	assert.Equal(t, model.LabelPositive, history[0].Label)
	assert.InDelta(t, 0.95, history[0].Score, 1e-9)
	assert.Equal(t, "2024-06-01 19:30:15", history[0].Timestamp)
}

func TestService_HistoryMatchesCallOrder(t *testing.T) {
	store := testutil.SetupTestDB(t)
	svc := New(store, testutil.NewMockClassifier(0.8))
	ctx := context.Background()

	texts := []string{"great bread", "cold fries", "lovely wine", "rude staff", "fine dessert"}
	var predictions []model.Prediction
	for _, text := range texts {
		p, err := svc.Classify(ctx, text)
		require.NoError(t, err)
		predictions = append(predictions, p)
	}

	history, err := svc.ListHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, len(texts))
	for i, rec := range history {
		assert.Equal(t, texts[i], rec.Text)
		assert.Equal(t, predictions[i], rec.Prediction())
	}
}

func TestService_Classify_RejectsEmptyTextBeforeClassifier(t *testing.T) {
	classifier := testutil.NewMockClassifier(0.9)
	store := testutil.NewMockStorage()
	svc := New(store, classifier)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.Classify(context.Background(), text)
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrValidation)
		assert.Equal(t, MsgEmptyText, common.UserMessage(err, ""))
	}

	assert.Empty(t, classifier.Calls())
	count, err := store.CountSentiments(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestService_Classify_ClassifierFailure(t *testing.T) {
	tests := []struct {
		configure func(*testutil.MockClassifier)
		name      string
	}{
		{
			name:      "error",
			configure: func(m *testutil.MockClassifier) { m.Err = errors.New("model not loaded") },
		},
		{
			name:      "panic",
			configure: func(m *testutil.MockClassifier) { m.Panic = "tokenizer blew up" },
		},
		{
			name:      "score outside range",
			configure: func(m *testutil.MockClassifier) { m.Score = 1.7 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := testutil.NewMockClassifier(0.9)
			tt.configure(classifier)
			store := testutil.NewMockStorage()
			svc := New(store, classifier)

			got, err := svc.Classify(context.Background(), "The soup was amazing")
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrClassification)
			assert.Equal(t, model.Prediction{}, got)

			count, _ := store.CountSentiments(context.Background())
			assert.Zero(t, count, "nothing is persisted for a failed classification")
		})
	}
}

func TestService_Classify_StorageFailureHidesLabel(t *testing.T) {
	store := testutil.NewMockStorage()
	store.SaveErr = fmt.Errorf("database is locked")
	classifier := testutil.NewMockClassifier(0.95)
	svc := New(store, classifier)

	got, err := svc.Classify(context.Background(), "The soup was amazing")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrStorage)
	assert.Equal(t, MsgSaveFailed, common.UserMessage(err, ""))
	assert.Equal(t, model.Prediction{}, got)
	assert.Len(t, classifier.Calls(), 1, "the label was computed before the write failed")
}

func TestService_ListHistory(t *testing.T) {
	t.Run("empty store returns empty slice", func(t *testing.T) {
		svc := New(testutil.NewMockStorage(), testutil.NewMockClassifier(0.5))
		history, err := svc.ListHistory(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, history)
		assert.Empty(t, history)
	})

	t.Run("storage failure", func(t *testing.T) {
		store := testutil.NewMockStorage()
		store.ListErr = errors.New("disk I/O error")
		svc := New(store, testutil.NewMockClassifier(0.5))

		_, err := svc.ListHistory(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrStorage)
		assert.Equal(t, MsgHistoryFailed, common.UserMessage(err, ""))
	})
}
