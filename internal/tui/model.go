package tui

import (
	"context"
	"strings"
	"time"

	"github.com/Veraticus/tastemood/internal/model"
	"github.com/Veraticus/tastemood/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Predictor is the part of the service client the dashboard needs.
type Predictor interface {
	Predict(ctx context.Context, text string) (model.Prediction, error)
}

// Model holds the dashboard state. The session it renders belongs to the
// caller; the model only appends to it.
type Model struct {
	theme     themes.Theme
	predict   func(text string) (model.Prediction, error)
	session   *model.Session
	lastError error
	result    *model.Prediction
	now       func() time.Time
	keymap    KeyMap
	warning   string
	input     textarea.Model
	spinner   spinner.Model
	help      help.Model
	width     int
	height    int
	loading   bool
	quitting  bool
}

// NewModel creates a dashboard model over a caller-owned session.
func NewModel(ctx context.Context, predictor Predictor, session *model.Session, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	input := textarea.New()
	input.Placeholder = "The soup was amazing..."
	input.ShowLineNumbers = false
	input.CharLimit = 2000
	input.SetWidth(min(cfg.Width-4, 80))
	input.SetHeight(4)
	input.FocusedStyle.Prompt = lipgloss.NewStyle().Foreground(cfg.Theme.Secondary)
	input.FocusedStyle.Text = lipgloss.NewStyle().Foreground(cfg.Theme.Foreground)
	input.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(cfg.Theme.Muted)
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(cfg.Theme.Primary)

	h := help.New()
	h.Styles.ShortKey = cfg.Theme.StatusInfo
	h.Styles.ShortDesc = cfg.Theme.Help
	h.Styles.ShortSeparator = cfg.Theme.Help

	return Model{
		theme:   cfg.Theme,
		predict: boundPredict(ctx, predictor),
		session: session,
		now:     cfg.Now,
		keymap:  DefaultKeyMap(),
		input:   input,
		spinner: s,
		help:    h,
		width:   cfg.Width,
		height:  cfg.Height,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Submit):
			return m.handleSubmit()
		case key.Matches(msg, m.keymap.Clear):
			m.input.Reset()
			m.warning = ""
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		return m, nil

	case predictionMsg:
		m.handlePrediction(msg)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		m.warning = "Please enter some text first!"
		return m, nil
	}

	m.warning = ""
	m.lastError = nil
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.submit(text, m.now()))
}

func (m *Model) handlePrediction(msg predictionMsg) {
	m.loading = false
	if msg.err != nil {
		m.lastError = msg.err
		m.result = nil
		return
	}

	prediction := msg.prediction
	m.result = &prediction
	m.session.Append(model.SessionEntry{
		CapturedAt: msg.capturedAt,
		Text:       msg.text,
		Label:      prediction.Label,
		Score:      prediction.Score,
	})
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}
