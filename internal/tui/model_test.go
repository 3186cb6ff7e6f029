package tui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/Veraticus/tastemood/internal/client"
	"github.com/Veraticus/tastemood/internal/common"
	"github.com/Veraticus/tastemood/internal/model"
	"github.com/Veraticus/tastemood/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePredictor struct {
	err        error
	prediction model.Prediction
	calls      []string
}

func (f *fakePredictor) Predict(_ context.Context, text string) (model.Prediction, error) {
	f.calls = append(f.calls, text)
	if f.err != nil {
		return model.Prediction{}, f.err
	}
	return f.prediction, nil
}

var fixedNow = time.Date(2024, 3, 1, 12, 30, 45, 0, time.Local)

func newTestModel(p Predictor, session *model.Session) Model {
	return NewModel(context.Background(), p, session,
		WithSize(100, 40),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func typeText(m Model, text string) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(Model)
}

func pressCtrlS(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	return updated.(Model), cmd
}

// runSubmission executes the submit command and feeds its result back.
func runSubmission(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	msg := findPrediction(t, cmd())
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func findPrediction(t *testing.T, msg tea.Msg) predictionMsg {
	t.Helper()
	switch msg := msg.(type) {
	case predictionMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if p, ok := c().(predictionMsg); ok {
				return p
			}
		}
	}
	t.Fatalf("no prediction message in %T", msg)
	return predictionMsg{}
}

func TestSubmit_EmptyInputWarns(t *testing.T) {
	for _, text := range []string{"", "   "} {
		t.Run(fmt.Sprintf("%q", text), func(t *testing.T) {
			p := &fakePredictor{}
			session := model.NewSession()
			m := typeText(newTestModel(p, session), text)

			m, cmd := pressCtrlS(t, m)

			assert.Nil(t, cmd)
			assert.False(t, m.loading)
			assert.Equal(t, "Please enter some text first!", m.warning)
			assert.Contains(t, m.View(), "Please enter some text first!")
			assert.Empty(t, p.calls)
			assert.Equal(t, 0, session.Len())
		})
	}
}

func TestSubmit_SuccessAppendsEntry(t *testing.T) {
	p := &fakePredictor{prediction: model.Prediction{Label: model.LabelPositive, Score: 0.95}}
	session := model.NewSession()
	m := typeText(newTestModel(p, session), "The soup was amazing")

	m, cmd := pressCtrlS(t, m)
	assert.True(t, m.loading)
	assert.Contains(t, m.View(), "Analyzing sentiment...")

	m = runSubmission(t, m, cmd)

	assert.False(t, m.loading)
	assert.Equal(t, []string{"The soup was amazing"}, p.calls)
	require.Equal(t, 1, session.Len())
	entry := session.Entries()[0]
	assert.Equal(t, "The soup was amazing", entry.Text)
	assert.Equal(t, model.LabelPositive, entry.Label)
	assert.InDelta(t, 0.95, entry.Score, 1e-9)
	assert.Equal(t, fixedNow, entry.CapturedAt)

	view := m.View()
	assert.Contains(t, view, "POSITIVE")
	assert.Contains(t, view, "0.9500")
	assert.Contains(t, view, "╭", "result is drawn in a rounded box")
	assert.Contains(t, view, "Sentiment Analysis History")
	assert.NotContains(t, view, EmptySessionMessage)
}

func TestSubmit_FailureShowsBannerWithoutAppending(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want string
	}{
		{
			name: "network",
			err:  fmt.Errorf("%w: dial tcp: connection refused", common.ErrNetwork),
			want: "Error connecting to the backend",
		},
		{
			name: "status",
			err:  &client.StatusError{Code: http.StatusInternalServerError, Message: "Error saving sentiment data."},
			want: "Error processing request: 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakePredictor{err: tt.err}
			session := model.NewSession()
			m := typeText(newTestModel(p, session), "The soup was amazing")

			m, cmd := pressCtrlS(t, m)
			m = runSubmission(t, m, cmd)

			assert.Equal(t, 0, session.Len())
			assert.False(t, m.Quitting())
			view := m.View()
			assert.Contains(t, view, tt.want)
			assert.Contains(t, view, EmptySessionMessage)
		})
	}
}

func TestSubmit_IgnoredWhileLoading(t *testing.T) {
	p := &fakePredictor{prediction: model.Prediction{Label: model.LabelPositive, Score: 0.9}}
	m := typeText(newTestModel(p, model.NewSession()), "nice")

	m, cmd := pressCtrlS(t, m)
	require.NotNil(t, cmd)

	m, cmd = pressCtrlS(t, m)
	assert.Nil(t, cmd)
	assert.True(t, m.loading)
}

func TestFailureThenSuccessClearsBanner(t *testing.T) {
	p := &fakePredictor{err: errors.New("boom")}
	session := model.NewSession()
	m := typeText(newTestModel(p, session), "lovely")

	m, cmd := pressCtrlS(t, m)
	m = runSubmission(t, m, cmd)
	require.Error(t, m.lastError)

	p.err = nil
	p.prediction = model.Prediction{Label: model.LabelNegative, Score: 0.8}
	m, cmd = pressCtrlS(t, m)
	m = runSubmission(t, m, cmd)

	assert.NoError(t, m.lastError)
	assert.Equal(t, 1, session.Len())
	assert.NotContains(t, m.View(), "boom")
}

func TestClearKey(t *testing.T) {
	m := typeText(newTestModel(&fakePredictor{}, model.NewSession()), "some text")
	require.Equal(t, "some text", m.input.Value())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = updated.(Model)

	assert.Empty(t, m.input.Value())
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := newTestModel(&fakePredictor{}, model.NewSession())
		updated, cmd := m.Update(msg)

		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
		assert.True(t, updated.(Model).Quitting())
		assert.Empty(t, updated.(Model).View())
	}
}

func TestAltEnterSubmits(t *testing.T) {
	p := &fakePredictor{prediction: model.Prediction{Label: model.LabelPositive, Score: 0.7}}
	m := typeText(newTestModel(p, model.NewSession()), "good")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter, Alt: true})

	assert.True(t, updated.(Model).loading)
	assert.NotNil(t, cmd)
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(&fakePredictor{}, model.NewSession())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = updated.(Model)

	assert.Equal(t, 60, m.width)
	assert.Equal(t, 20, m.height)
}

func TestRun_Validation(t *testing.T) {
	assert.Error(t, Run(context.Background(), nil, model.NewSession()))
	assert.Error(t, Run(context.Background(), &fakePredictor{}, nil))
}

func TestNewModel_AppliesTheme(t *testing.T) {
	theme := themes.CatppuccinMocha
	m := NewModel(context.Background(), &fakePredictor{}, model.NewSession(), WithTheme(theme))

	assert.Equal(t, theme.Secondary, m.input.FocusedStyle.Prompt.GetForeground())
	assert.Equal(t, theme.Foreground, m.input.FocusedStyle.Text.GetForeground())
	assert.Equal(t, theme.Muted, m.input.FocusedStyle.Placeholder.GetForeground())
	assert.Equal(t, theme.Info, m.help.Styles.ShortKey.GetForeground())
	assert.Equal(t, theme.Muted, m.help.Styles.ShortDesc.GetForeground())
}

type ctxPredictor struct{}

func (ctxPredictor) Predict(ctx context.Context, _ string) (model.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return model.Prediction{}, err
	}
	return model.Prediction{Label: model.LabelPositive, Score: 0.6}, nil
}

func TestSubmit_UsesConstructionContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	session := model.NewSession()
	m := typeText(NewModel(ctx, ctxPredictor{}, session), "tasty")

	m, cmd := pressCtrlS(t, m)
	m = runSubmission(t, m, cmd)

	assert.ErrorIs(t, m.lastError, context.Canceled)
	assert.Equal(t, 0, session.Len())
}
