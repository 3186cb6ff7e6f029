package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, LoadEnv(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("sets unset variables only", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		content := "TASTEMOOD_TEST_FRESH=from-file\nTASTEMOOD_TEST_SET=from-file\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		t.Setenv("TASTEMOOD_TEST_SET", "from-env")
		t.Setenv("TASTEMOOD_TEST_FRESH", "")
		require.NoError(t, os.Unsetenv("TASTEMOOD_TEST_FRESH"))

		require.NoError(t, LoadEnv(path))

		assert.Equal(t, "from-file", os.Getenv("TASTEMOOD_TEST_FRESH"))
		assert.Equal(t, "from-env", os.Getenv("TASTEMOOD_TEST_SET"))
	})
}
