package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/Veraticus/tastemood/internal/model"
	"github.com/Veraticus/tastemood/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

const (
	axisWidth  = 5
	pointGlyph = "●"
	lineGlyph  = "·"
)

// RenderTrendChart plots session scores against capture time. Points are
// spaced evenly along the x axis in capture order and joined by a dotted
// line; the y axis always spans 0.0 to 1.0.
func RenderTrendChart(session *model.Session, theme themes.Theme, width, height int) string {
	entries := session.ByCaptureTime()
	if len(entries) == 0 {
		return ""
	}
	height = max(height, 3)
	plotWidth := max(width-axisWidth-2, 10)

	// Keep the newest points when there are more than columns.
	if len(entries) > plotWidth {
		entries = entries[len(entries)-plotWidth:]
	}

	grid := make([][]string, height)
	for i := range grid {
		grid[i] = make([]string, plotWidth)
		for j := range grid[i] {
			grid[i][j] = " "
		}
	}

	cols := make([]int, len(entries))
	rows := make([]int, len(entries))
	for i, e := range entries {
		cols[i] = pointColumn(i, len(entries), plotWidth)
		rows[i] = scoreRow(e.Score, height)
	}

	lineStyle := lipgloss.NewStyle().Foreground(theme.Trend)
	for i := 1; i < len(entries); i++ {
		x0, x1 := cols[i-1], cols[i]
		for x := x0 + 1; x < x1; x++ {
			frac := float64(x-x0) / float64(x1-x0)
			y := int(math.Round(float64(rows[i-1]) + frac*float64(rows[i]-rows[i-1])))
			grid[y][x] = lineStyle.Render(lineGlyph)
		}
	}
	for i, e := range entries {
		grid[rows[i]][cols[i]] = lipgloss.NewStyle().Foreground(theme.LabelColor(e.Label)).Render(pointGlyph)
	}

	var b strings.Builder
	for r, row := range grid {
		b.WriteString(axisLabel(r, height))
		b.WriteString(" │")
		b.WriteString(strings.Join(row, ""))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(" ", axisWidth) + " └" + strings.Repeat("─", plotWidth) + "\n")

	first := entries[0].CapturedAt.Format("15:04:05")
	last := entries[len(entries)-1].CapturedAt.Format("15:04:05")
	gap := max(plotWidth-len(first)-len(last), 1)
	b.WriteString(strings.Repeat(" ", axisWidth+2) + first)
	if len(entries) > 1 {
		b.WriteString(strings.Repeat(" ", gap) + last)
	}

	return theme.Normal.Render(b.String())
}

// pointColumn spreads n points across width columns.
func pointColumn(i, n, width int) int {
	if n <= 1 {
		return 0
	}
	return i * (width - 1) / (n - 1)
}

// scoreRow maps a score in [0,1] to a grid row, row 0 being 1.0.
func scoreRow(score float64, height int) int {
	score = math.Max(0, math.Min(1, score))
	return int(math.Round((1 - score) * float64(height-1)))
}

func axisLabel(row, height int) string {
	switch row {
	case 0:
		return fmt.Sprintf("%*s", axisWidth, "1.0")
	case (height - 1) / 2:
		return fmt.Sprintf("%*s", axisWidth, "0.5")
	case height - 1:
		return fmt.Sprintf("%*s", axisWidth, "0.0")
	default:
		return strings.Repeat(" ", axisWidth)
	}
}
