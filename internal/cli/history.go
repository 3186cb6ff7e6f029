package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Veraticus/tastemood/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"
)

// CSVHeader is the first row of a history export.
var CSVHeader = []string{"id", "timestamp", "sentiment_label", "sentiment_score", "text"}

const maxTextWidth = 60

// RenderHistory renders stored records as an aligned table.
func RenderHistory(records []model.SentimentRecord) string {
	if len(records) == 0 {
		return FormatInfo("No sentiment data available yet.")
	}

	widths := []int{4, 19, 9, 7, 0}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.Timestamp,
			r.Label,
			fmt.Sprintf("%.4f", r.Score),
			clip(strings.Join(strings.Fields(r.Text), " "), maxTextWidth),
		}
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
		rows = append(rows, row)
	}

	header := make([]string, len(CSVHeader))
	for i, title := range []string{"ID", "Timestamp", "Label", "Score", "Text"} {
		header[i] = TableHeaderStyle.Width(widths[i] + 2).Render(title)
	}

	lines := []string{
		TitleStyle.Render("Sentiment Analysis History"),
		lipgloss.JoinHorizontal(lipgloss.Top, header...),
	}
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			style := TableCellStyle.Width(widths[i] + 2)
			switch i {
			case 1:
				style = style.Inherit(SubtleStyle)
			case 2:
				style = style.Inherit(LabelStyle(cell))
			}
			cells[i] = style.Render(cell)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// WriteHistoryCSV writes records as CSV to w. When progress is non-nil a
// progress bar is drawn on it while rows are written.
func WriteHistoryCSV(w io.Writer, records []model.SentimentRecord, progress io.Writer) error {
	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = newExportBar(len(records), progress)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.Timestamp,
			r.Label,
			strconv.FormatFloat(r.Score, 'f', -1, 64),
			r.Text,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", r.ID, err)
		}
		if bar != nil {
			if err := bar.Add(1); err != nil {
				slog.Warn("Failed to update progress bar", "error", err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func newExportBar(total int, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Exporting sentiment history...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
