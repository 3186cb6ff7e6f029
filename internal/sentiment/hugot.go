//go:build ORT

package sentiment

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Veraticus/tastemood/internal/model"
	"github.com/Veraticus/tastemood/internal/service"
	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
	"github.com/schollz/progressbar/v3"
)

func init() {
	hugotFactory = func(cfg Config) (service.Classifier, error) {
		return newHugotClassifier(cfg)
	}
}

// hugotClassifier runs a transformer text-classification model locally
// through ONNX Runtime.
type hugotClassifier struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
	mu       sync.Mutex
}

func newHugotClassifier(cfg Config) (*hugotClassifier, error) {
	modelPath, err := ensureModel(cfg)
	if err != nil {
		return nil, err
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize hugot session: %w", err)
	}

	pipeline, err := hugot.NewPipeline(session, hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "sentimentPipeline",
	})
	if err != nil {
		_ = session.Destroy()
		return nil, fmt.Errorf("failed to initialize text classification pipeline: %w", err)
	}

	slog.Info("Loaded transformer sentiment model", "path", modelPath)

	return &hugotClassifier{
		session:  session,
		pipeline: pipeline,
	}, nil
}

// ensureModel returns the local directory of the configured model,
// downloading it into cfg.ModelPath on first use.
func ensureModel(cfg Config) (string, error) {
	localDir := filepath.Join(cfg.ModelPath, strings.ReplaceAll(cfg.ModelName, "/", "_"))
	if _, err := os.Stat(localDir); err == nil {
		return localDir, nil
	}

	if err := os.MkdirAll(cfg.ModelPath, 0750); err != nil {
		return "", fmt.Errorf("failed to create model directory: %w", err)
	}

	spinner := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetDescription("Downloading "+cfg.ModelName),
	)
	defer func() { _ = spinner.Finish() }()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = spinner.Add(1)
			}
		}
	}()
	defer close(done)

	path, err := hugot.DownloadModel(cfg.ModelName, cfg.ModelPath, hugot.NewDownloadOptions())
	if err != nil {
		return "", fmt.Errorf("failed to download model %s: %w", cfg.ModelName, err)
	}
	return path, nil
}

func (h *hugotClassifier) Classify(ctx context.Context, text string) (model.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return model.Prediction{}, err
	}
	if strings.TrimSpace(text) == "" {
		return model.Prediction{}, fmt.Errorf("text is empty")
	}

	h.mu.Lock()
	output, err := h.pipeline.RunPipeline([]string{text})
	h.mu.Unlock()
	if err != nil {
		return model.Prediction{}, fmt.Errorf("pipeline failed: %w", err)
	}

	if len(output.ClassificationOutputs) == 0 || len(output.ClassificationOutputs[0]) == 0 {
		return model.Prediction{}, fmt.Errorf("pipeline returned no classification")
	}

	top := output.ClassificationOutputs[0][0]
	for _, candidate := range output.ClassificationOutputs[0][1:] {
		if candidate.Score > top.Score {
			top = candidate
		}
	}

	return model.Prediction{Label: strings.ToUpper(top.Label), Score: float64(top.Score)}, nil
}

// Close releases the ONNX Runtime session.
func (h *hugotClassifier) Close() error {
	return h.session.Destroy()
}
