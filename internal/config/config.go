package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Default values for settings shared by the server and the dashboard.
const (
	DefaultServerAddress = ":8000"
	DefaultDatabasePath  = "sentiment_results.db"
	DefaultAPIURL        = "http://127.0.0.1:8000"
)

// SetDefaults registers default values and environment binding on v.
// Keys such as classifier.openai.api_key are read from TASTEMOOD_CLASSIFIER_OPENAI_API_KEY.
func SetDefaults(v *viper.Viper, envPrefix string) {
	v.SetDefault("server.address", DefaultServerAddress)
	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("classifier.backend", "vader")
	v.SetDefault("dashboard.api_url", DefaultAPIURL)
	v.SetDefault("dashboard.timeout", "0s")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// DatabasePath returns the configured database path with ~ and env vars expanded.
func DatabasePath(v *viper.Viper) string {
	path := v.GetString("database.path")
	if path == ":memory:" {
		return path
	}
	return ExpandPath(path)
}

// ExpandPath expands a leading ~ and $VAR style environment variables in path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}
