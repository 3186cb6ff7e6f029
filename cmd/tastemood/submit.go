package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/tastemood/internal/cli"
	"github.com/spf13/cobra"
)

const blankTextWarning = "Please enter some text first!"

var errBlankText = errors.New("no text to analyze")

func submitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit <text>",
		Short: "Classify a single piece of text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bindClientFlags(cmd)

			text := strings.Join(args, " ")
			if strings.TrimSpace(text) == "" {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatWarning(blankTextWarning))
				return errBlankText
			}

			prediction, err := newAPIClient().Predict(cmd.Context(), text)
			if err != nil {
				return fmt.Errorf("failed to classify text: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatPrediction(prediction))
			return nil
		},
	}

	addClientFlags(cmd)

	return cmd
}
