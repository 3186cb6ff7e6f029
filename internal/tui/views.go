package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/tastemood/internal/client"
	"github.com/Veraticus/tastemood/internal/common"
	"github.com/Veraticus/tastemood/internal/model"
	"github.com/Veraticus/tastemood/internal/tui/themes"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const (
	// EmptySessionMessage is shown until the first successful submission.
	EmptySessionMessage = "No sentiment data available yet."

	maxTableRows = 10
	chartHeight  = 8
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.theme.Title.Render("🍽️  TasteMood Analyzer"),
		m.theme.Subtitle.Render("Find out the mood behind your words!"),
		"",
		m.theme.Normal.Render("Tell us about your food experience:"),
		m.input.View(),
		m.help.View(m.keymap),
		"",
	}

	if status := m.renderStatus(); status != "" {
		sections = append(sections, status, "")
	}

	sections = append(sections, RenderSession(m.session, m.theme, m.width))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStatus renders the outcome of the latest submission.
func (m Model) renderStatus() string {
	switch {
	case m.loading:
		return m.spinner.View() + " " + m.theme.StatusPending.Render("Analyzing sentiment...")
	case m.warning != "":
		return m.theme.StatusWarning.Render("⚠ " + m.warning)
	case m.lastError != nil:
		return m.theme.ErrorBanner.Render(errorBanner(m.lastError))
	case m.result != nil:
		return m.theme.RoundedBox.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			fmt.Sprintf("%s %s",
				m.theme.Bold.Render("Sentiment:"),
				m.theme.LabelStyle(m.result.Label).Render(m.result.Label)),
			fmt.Sprintf("%s %s",
				m.theme.Bold.Render("Confidence Score:"),
				m.theme.Normal.Render(fmt.Sprintf("%.4f", m.result.Score))),
		))
	}
	return ""
}

// errorBanner turns a failed submission into a one-line message.
func errorBanner(err error) string {
	var statusErr *client.StatusError
	switch {
	case errors.As(err, &statusErr):
		if statusErr.Message != "" {
			return fmt.Sprintf("Error processing request: %d (%s)", statusErr.Code, statusErr.Message)
		}
		return fmt.Sprintf("Error processing request: %d", statusErr.Code)
	case errors.Is(err, common.ErrNetwork):
		return fmt.Sprintf("Error connecting to the backend: %v", err)
	default:
		return fmt.Sprintf("Error processing request: %v", err)
	}
}

// RenderSession renders the history table and both charts for session, or
// the empty-state message when nothing has been recorded yet.
func RenderSession(session *model.Session, theme themes.Theme, width int) string {
	if session == nil || session.Len() == 0 {
		return theme.StatusPending.Render(EmptySessionMessage)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		theme.Title.Render("Sentiment Analysis History"),
		RenderHistoryTable(session, theme, width),
		"",
		theme.Title.Render("Sentiment Score Trend Over Time"),
		RenderTrendChart(session, theme, width, chartHeight),
		"",
		theme.Title.Render("Sentiment Distribution"),
		RenderDistribution(session, theme, width),
	)
}

// RenderHistoryTable renders the most recent session entries in submission
// order.
func RenderHistoryTable(session *model.Session, theme themes.Theme, width int) string {
	entries := session.Entries()
	if len(entries) > maxTableRows {
		entries = entries[len(entries)-maxTableRows:]
	}

	textWidth := max(width-19-12-10-8, 20)
	columns := []table.Column{
		{Title: "Timestamp", Width: 19},
		{Title: "Text", Width: textWidth},
		{Title: "Label", Width: 10},
		{Title: "Score", Width: 6},
	}

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{
			e.Timestamp(),
			truncate(singleLine(e.Text), textWidth),
			e.Label,
			fmt.Sprintf("%.4f", e.Score),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t.View()
}

// RenderDistribution renders one bar per label, most frequent first, with
// its share of the session.
func RenderDistribution(session *model.Session, theme themes.Theme, width int) string {
	counts := session.LabelCounts()
	if len(counts) == 0 {
		return ""
	}

	total := session.Len()
	maxCount := counts[0].Count
	barWidth := min(max(width-40, 10), 40)

	lines := make([]string, 0, len(counts))
	for _, c := range counts {
		barLen := int(float64(c.Count) / float64(maxCount) * float64(barWidth))
		bar := strings.Repeat("█", max(barLen, 1))
		pct := float64(c.Count) / float64(total) * 100

		lines = append(lines, fmt.Sprintf("%-10s %s %d (%.1f%%)",
			truncate(c.Label, 10),
			lipgloss.NewStyle().Foreground(theme.LabelColor(c.Label)).Render(bar),
			c.Count,
			pct,
		))
	}

	return theme.Normal.Render(strings.Join(lines, "\n"))
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
