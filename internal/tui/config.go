package tui

import (
	"time"

	"github.com/Veraticus/tastemood/internal/tui/themes"
)

// Config holds dashboard configuration.
type Config struct {
	Theme       themes.Theme
	Now         func() time.Time
	Width       int
	Height      int
	NoAltScreen bool
}

// Option is a functional option for configuring the dashboard.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:  themes.Default,
		Now:    time.Now,
		Width:  100,
		Height: 40,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithClock overrides the wall clock used to stamp session entries.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		c.Now = now
	}
}

// WithoutAltScreen keeps the dashboard in the main terminal buffer.
func WithoutAltScreen() Option {
	return func(c *Config) {
		c.NoAltScreen = true
	}
}
