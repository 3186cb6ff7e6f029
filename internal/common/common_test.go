package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError(t *testing.T) {
	inner := fmt.Errorf("insert failed: %w", ErrStorage)
	err := NewUserError("Error saving sentiment data.", inner)

	assert.Equal(t, "Error saving sentiment data.: insert failed: storage failure", err.Error())
	assert.True(t, errors.Is(err, ErrStorage))
	assert.Equal(t, "Error saving sentiment data.", UserMessage(err, "fallback"))
	assert.Equal(t, "fallback", UserMessage(inner, "fallback"))

	bare := &UserError{UserMessage: "just a message"}
	assert.Equal(t, "just a message", bare.Error())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLoggerTo_JSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	require.NoError(t, SetupLoggerTo(&buf, "info", "json"))

	LogInfo("stored sentiment", Fields{"id": 3})
	slog.Debug("dropped at info level")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "stored sentiment", line["msg"])
	assert.Equal(t, float64(3), line["id"])
}

func TestSetupLoggerTo_InvalidFormat(t *testing.T) {
	err := SetupLoggerTo(&bytes.Buffer{}, "info", "xml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLogError_IncludesError(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	require.NoError(t, SetupLoggerTo(&buf, "debug", "json"))

	LogError(ErrStorage, "insert failed", Fields{"table": "sentiments"})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "storage failure", line["error"])
	assert.Equal(t, "sentiments", line["table"])
	assert.Equal(t, "ERROR", line["level"])
}
