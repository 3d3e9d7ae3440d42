package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	_ "time/tzdata"

	"wastetrack/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{"DEBUG", slog.LevelDebug, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_JSONWithServiceName(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "wastetrack"

	var buf bytes.Buffer
	logger := newLogger(&buf, cfg, slog.LevelInfo)
	logger.Debug("hidden")
	logger.Info("sweep finished", slog.Int("missed", 2))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "sweep finished", entry["msg"])
	assert.Equal(t, "wastetrack", entry["service"])
	assert.EqualValues(t, 2, entry["missed"])
}

func TestNewLogger_TimestampsInServiceZone(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Timezone = "Asia/Manila"
	cfg.Env.Env = "production"

	var buf bytes.Buffer
	newLogger(&buf, cfg, slog.LevelInfo).Info("truck position updated")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "production", entry["env"])
	assert.Contains(t, entry["time"], "+08:00")
}
