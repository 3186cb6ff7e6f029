package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("TASTEMOOD_TEST_DIR", "/var/lib/tastemood")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "tilde only", in: "~", want: home},
		{name: "tilde prefix", in: "~/data/sentiment.db", want: filepath.Join(home, "data/sentiment.db")},
		{name: "env var", in: "$TASTEMOOD_TEST_DIR/sentiment.db", want: "/var/lib/tastemood/sentiment.db"},
		{name: "relative", in: "sentiment_results.db", want: "sentiment_results.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v, "TASTEMOODTEST")

	assert.Equal(t, DefaultServerAddress, v.GetString("server.address"))
	assert.Equal(t, DefaultDatabasePath, v.GetString("database.path"))
	assert.Equal(t, "vader", v.GetString("classifier.backend"))
	assert.Equal(t, DefaultAPIURL, v.GetString("dashboard.api_url"))
}

func TestSetDefaults_EnvOverride(t *testing.T) {
	t.Setenv("TASTEMOODTEST_SERVER_ADDRESS", "127.0.0.1:9090")
	t.Setenv("TASTEMOODTEST_DATABASE_PATH", ":memory:")

	v := viper.New()
	SetDefaults(v, "TASTEMOODTEST")

	assert.Equal(t, "127.0.0.1:9090", v.GetString("server.address"))
	assert.Equal(t, ":memory:", DatabasePath(v))
}

func TestLoadClassifierConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Run("defaults to vader", func(t *testing.T) {
		viper.Reset()
		cfg, err := LoadClassifierConfig()
		require.NoError(t, err)
		assert.Equal(t, "vader", cfg.Backend)
	})

	t.Run("openai key from environment", func(t *testing.T) {
		viper.Reset()
		t.Setenv("OPENAI_API_KEY", "sk-test")
		viper.Set("classifier.backend", "openai")
		viper.Set("classifier.openai.model", "gpt-4o-mini")

		cfg, err := LoadClassifierConfig()
		require.NoError(t, err)
		assert.Equal(t, "openai", cfg.Backend)
		assert.Equal(t, "sk-test", cfg.APIKey)
		assert.Equal(t, "gpt-4o-mini", cfg.Model)
	})

	t.Run("openai without key is rejected", func(t *testing.T) {
		viper.Reset()
		t.Setenv("OPENAI_API_KEY", "")
		viper.Set("classifier.backend", "openai")

		_, err := LoadClassifierConfig()
		assert.Error(t, err)
	})

	t.Run("neutral threshold", func(t *testing.T) {
		viper.Reset()
		viper.Set("classifier.neutral_threshold", 0.05)

		cfg, err := LoadClassifierConfig()
		require.NoError(t, err)
		assert.InDelta(t, 0.05, cfg.NeutralThreshold, 1e-9)
	})
}
