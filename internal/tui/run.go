package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/tastemood/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard and blocks until the user quits or ctx is
// canceled. The session is owned by the caller and is reset on return.
func Run(ctx context.Context, predictor Predictor, session *model.Session, opts ...Option) error {
	if predictor == nil {
		return fmt.Errorf("predictor is required")
	}
	if session == nil {
		return fmt.Errorf("session is required")
	}
	defer session.Reset()

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if !cfg.NoAltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	program := tea.NewProgram(NewModel(ctx, predictor, session, opts...), programOpts...)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}
