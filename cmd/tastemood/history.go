package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Veraticus/tastemood/internal/cli"
	"github.com/Veraticus/tastemood/internal/config"
	"github.com/Veraticus/tastemood/internal/model"
	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show every stored sentiment result",
		Long: `Fetch the full sentiment history from the API in insertion order.
With --csv the history is written to a file instead of the terminal.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bindClientFlags(cmd)

			records, err := newAPIClient().History(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch history: %w", err)
			}

			if csvPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), cli.RenderHistory(records))
				return nil
			}
			return exportHistory(config.ExpandPath(csvPath), records, cmd)
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "write the history to this CSV file")
	addClientFlags(cmd)

	return cmd
}

func exportHistory(path string, records []model.SentimentRecord, cmd *cobra.Command) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	if err := cli.WriteHistoryCSV(f, records, cmd.ErrOrStderr()); err != nil {
		return err
	}

	slog.Info("Exported sentiment history", "path", path, "records", len(records))
	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Wrote %d records to %s", len(records), path)))
	return nil
}
