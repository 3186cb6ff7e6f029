package sentiment

import (
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/tastemood/internal/common"
	"github.com/Veraticus/tastemood/internal/service"
)

// hugotFactory is set by hugot.go when the binary is built with -tags ORT.
var hugotFactory func(Config) (service.Classifier, error)

// New creates the classifier selected by cfg.Backend, wrapped with Safe.
func New(cfg Config) (service.Classifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		classifier service.Classifier
		err        error
	)

	switch strings.ToLower(cfg.Backend) {
	case BackendVader:
		classifier = newVaderClassifier(cfg)
	case BackendOpenAI:
		classifier, err = newOpenAIClassifier(cfg)
	case BackendHugot:
		if hugotFactory == nil {
			return nil, fmt.Errorf("%w: the hugot backend requires a build with -tags ORT", common.ErrInvalidConfig)
		}
		classifier, err = hugotFactory(cfg)
	default:
		return nil, fmt.Errorf("%w: unsupported classifier backend %q", common.ErrInvalidConfig, cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	return Safe(classifier), nil
}

// Close releases resources held by c, if it holds any.
func Close(c service.Classifier) error {
	if closer, ok := c.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
