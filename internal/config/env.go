package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/subosito/gotenv"
)

// DefaultEnvFile is read from the working directory before config resolution.
const DefaultEnvFile = ".env"

// LoadEnv loads variables from path into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("No .env file found, using OS environment", "path", path)
			return nil
		}
		return fmt.Errorf("failed to stat env file %s: %w", path, err)
	}

	if err := gotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
