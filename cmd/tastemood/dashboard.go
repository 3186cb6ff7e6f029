package main

import (
	"io"
	"log/slog"

	"github.com/Veraticus/tastemood/internal/client"
	"github.com/Veraticus/tastemood/internal/model"
	"github.com/Veraticus/tastemood/internal/tui"
	"github.com/Veraticus/tastemood/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Analyze reviews interactively",
		Long: `Open a terminal dashboard that sends text to the sentiment API and charts
the results of the current session. The session history is kept in memory
and discarded on exit.`,
		RunE: runDashboard,
	}

	cmd.Flags().String("theme", "default", "color theme (default, catppuccin-mocha)")
	_ = viper.BindPFlag("dashboard.theme", cmd.Flags().Lookup("theme"))
	addClientFlags(cmd)

	return cmd
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	bindClientFlags(cmd)

	// The TUI owns the terminal; log output would corrupt it.
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer slog.SetDefault(previous)

	session := model.NewSession()
	return tui.Run(cmd.Context(), newAPIClient(), session,
		tui.WithTheme(themes.GetTheme(viper.GetString("dashboard.theme"))),
	)
}

// addClientFlags registers the flags shared by commands that call the API.
func addClientFlags(cmd *cobra.Command) {
	cmd.Flags().String("api-url", "", "sentiment API base URL (default http://127.0.0.1:8000)")
	cmd.Flags().Duration("timeout", 0, "per-request timeout (default 30s)")
}

// bindClientFlags binds the running command's client flags. Several commands
// share the same keys, so binding happens at run time rather than on
// construction.
func bindClientFlags(cmd *cobra.Command) {
	_ = viper.BindPFlag("dashboard.api_url", cmd.Flags().Lookup("api-url"))
	_ = viper.BindPFlag("dashboard.timeout", cmd.Flags().Lookup("timeout"))
}

func newAPIClient() *client.Client {
	var opts []client.Option
	if timeout := viper.GetDuration("dashboard.timeout"); timeout > 0 {
		opts = append(opts, client.WithTimeout(timeout))
	}
	return client.New(viper.GetString("dashboard.api_url"), opts...)
}
