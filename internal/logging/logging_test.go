package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trends/trends_api/internal/config"
	"github.com/trends/trends_api/internal/errlocal"
	"github.com/trends/trends_api/internal/utils"
)

func jsonConfig(level string) config.Config {
	return config.Config{
		Log: config.LogConfig{
			Level:  level,
			Format: "json",
		},
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "json format with debug level",
			cfg:  jsonConfig("debug"),
		},
		{
			name: "text format with info level",
			cfg:  config.Config{Log: config.LogConfig{Level: "info", Format: "text"}},
		},
		{
			name: "invalid level defaults to info",
			cfg:  jsonConfig("invalid"),
		},
		{
			name: "default format (empty)",
			cfg:  config.Config{Log: config.LogConfig{Level: "warn"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, logger)
			assert.NotNil(t, logger.Entry)
		})
	}
}

func TestNewLogger_WithFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test.log")

	cfg := jsonConfig("info")
	cfg.Log.File = logFile

	logger, err := NewLogger(cfg)
	require.NoError(t, err)

	logger.Info("test message")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err, "log file should be created")
	assert.Contains(t, string(data), "test message")
}

func TestNewLogger_WithInvalidFile(t *testing.T) {
	cfg := jsonConfig("info")
	cfg.Log.File = "/invalid/path/that/does/not/exist/test.log"

	_, err := NewLogger(cfg)
	assert.Error(t, err)
}

func TestLogger_WithComponent(t *testing.T) {
	logger, err := NewLogger(jsonConfig("info"))
	require.NoError(t, err)

	tests := []struct {
		name      string
		component Component
	}{
		{"main component", MainComponent},
		{"api component", ApiComponent},
		{"store component", StoreComponent},
		{"custom component", Component("CUSTOM")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := logger.WithComponent(tt.component)
			assert.Equal(t, tt.component, l.Data["component"])
		})
	}

	assert.Equal(t, ApiComponent, logger.WithApiTag().Data["component"])
	assert.Equal(t, StoreComponent, logger.WithStoreTag().Data["component"])
}

func TestLogger_WithField(t *testing.T) {
	logger, err := NewLogger(jsonConfig("info"))
	require.NoError(t, err)

	l := logger.WithField("test_key", "test_value")
	assert.Equal(t, "test_value", l.Data["test_key"])
}

func TestLogger_WithContext_AllFields(t *testing.T) {
	logger, err := NewLogger(jsonConfig("info"))
	require.NoError(t, err)

	ctx := context.Background()
	ctx = utils.SetRequestID(ctx, "test-request-id")
	ctx = context.WithValue(ctx, utils.PathKey, "/api/v1/trends")
	ctx = context.WithValue(ctx, utils.MethodKey, "POST")

	l := logger.WithContext(ctx)

	assert.Equal(t, "test-request-id", l.Data["request_id"])
	assert.Equal(t, "/api/v1/trends", l.Data["path"])
	assert.Equal(t, "POST", l.Data["method"])
}

func TestLogger_WithContext_EmptyContext(t *testing.T) {
	logger, err := NewLogger(jsonConfig("info"))
	require.NoError(t, err)

	l := logger.WithContext(context.Background())

	assert.Equal(t, logger, l)
}

func TestLogger_WithContext_IgnoresTime(t *testing.T) {
	logger, err := NewLogger(jsonConfig("info"))
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), utils.TimeKey, "some-time")
	l := logger.WithContext(ctx)

	_, hasTime := l.Data["time"]
	assert.False(t, hasTime, "time should not be in log fields")
}

func TestLogger_WithLocalError(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(jsonConfig("info"))
	require.NoError(t, err)
	logger.Logger.SetOutput(&buf)

	nf := fmt.Errorf("handler: %w", errlocal.NewErrNotFound("user 42 not found", "users", nil))
	logger.WithLocalError(nf).Error("request failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "not_found", entry["error_kind"])
	assert.Equal(t, "user 42 not found", entry["error_message"])
	assert.Equal(t, "users", entry["error_system"])
	assert.Contains(t, entry["error"], "user 42 not found")
}

func TestLogger_WithLocalError_PlainError(t *testing.T) {
	logger := NewNopLogger()

	l := logger.WithLocalError(errors.New("boom"))

	assert.Equal(t, "internal", l.Data["error_kind"])
	_, hasMsg := l.Data["error_message"]
	assert.False(t, hasMsg)
}

func TestLogger_LogOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(jsonConfig("info"))
	require.NoError(t, err)
	logger.Logger.SetOutput(&buf)

	logger.Info("test message")

	var logEntry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

	assert.Equal(t, "test message", logEntry["message"])
	assert.Equal(t, "info", logEntry["level"])
	assert.Equal(t, "MAIN", logEntry["component"])
}

func TestLogger_DifferentLogLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(jsonConfig("warn"))
	require.NoError(t, err)
	logger.Logger.SetOutput(&buf)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}
