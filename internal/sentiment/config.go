package sentiment

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/tastemood/internal/common"
)

// Supported backends.
const (
	BackendVader  = "vader"
	BackendOpenAI = "openai"
	BackendHugot  = "hugot"
)

// Config holds configuration for the classifier backends.
type Config struct {
	Backend          string
	APIKey           string
	Model            string
	BaseURL          string
	ModelPath        string
	ModelName        string
	Timeout          time.Duration
	NeutralThreshold float64
}

// DefaultConfig returns the default classifier configuration.
func DefaultConfig() Config {
	return Config{
		Backend:   BackendVader,
		Model:     "gpt-4o-mini",
		BaseURL:   "https://api.openai.com/v1",
		ModelName: "KnightsAnalytics/distilbert-base-uncased-finetuned-sst-2-english",
		ModelPath: "./models",
		Timeout:   30 * time.Second,
	}
}

// Validate checks that the configuration is usable for the selected backend.
func (c Config) Validate() error {
	if c.NeutralThreshold < 0 || c.NeutralThreshold >= 1 {
		return fmt.Errorf("%w: neutral threshold must be in [0,1), got %.2f", common.ErrInvalidConfig, c.NeutralThreshold)
	}

	switch strings.ToLower(c.Backend) {
	case BackendVader:
	case BackendOpenAI:
		if c.APIKey == "" {
			return fmt.Errorf("%w: OpenAI API key is required", common.ErrMissingConfig)
		}
	case BackendHugot:
		if c.ModelPath == "" {
			return fmt.Errorf("%w: hugot model path is required", common.ErrMissingConfig)
		}
	default:
		return fmt.Errorf("%w: unsupported classifier backend %q", common.ErrInvalidConfig, c.Backend)
	}

	return nil
}
