package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/tastemood/internal/api"
	"github.com/Veraticus/tastemood/internal/config"
	"github.com/Veraticus/tastemood/internal/inference"
	"github.com/Veraticus/tastemood/internal/sentiment"
	"github.com/Veraticus/tastemood/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the sentiment API",
		Long: `Start the HTTP API that classifies text and records every result.

Endpoints:
  POST /predict/   {"text": "..."} -> {"label": "...", "score": 0.0}
  GET  /history/   every stored result in insertion order
  GET  /health     liveness check`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "listen address (default :8000)")
	cmd.Flags().String("db", "", "database path (default sentiment_results.db)")
	cmd.Flags().String("backend", "", "classifier backend (vader, openai, hugot)")

	_ = viper.BindPFlag("server.address", cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("database.path", cmd.Flags().Lookup("db"))
	_ = viper.BindPFlag("classifier.backend", cmd.Flags().Lookup("backend"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	classifierCfg, err := config.LoadClassifierConfig()
	if err != nil {
		return fmt.Errorf("invalid classifier configuration: %w", err)
	}

	classifier, err := sentiment.New(*classifierCfg)
	if err != nil {
		return fmt.Errorf("failed to create classifier: %w", err)
	}
	defer func() {
		if closeErr := sentiment.Close(classifier); closeErr != nil {
			slog.Warn("Failed to close classifier", "error", closeErr)
		}
	}()

	dbPath := config.DatabasePath(viper.GetViper())
	store, err := storage.Open(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Warn("Failed to close database", "error", closeErr)
		}
	}()

	count, err := store.CountSentiments(ctx)
	if err != nil {
		return fmt.Errorf("failed to read database: %w", err)
	}
	slog.Info("Sentiment store ready",
		"path", dbPath,
		"records", count,
		"backend", classifierCfg.Backend)

	if viper.GetString("logging.level") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	svc := inference.New(store, classifier)
	server := api.NewServer(viper.GetString("server.address"), api.NewRouter(svc))
	return server.Run(ctx)
}
