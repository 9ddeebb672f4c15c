package cmd

import (
	"log/slog"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty falls back", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"mixed case", "DeBuG", slog.LevelDebug},
		{"surrounding spaces", "  info  ", slog.LevelInfo},
		{"numeric", "-4", slog.LevelDebug},
		{"unknown falls back", "loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, defaultAssignmentFile, viper.GetString(assignmentFlagName))
	assert.Equal(t, defaultOutputDir, viper.GetString(outputFlagName))
	assert.Equal(t, defaultParallel, viper.GetInt(parallelConfigKey))
	assert.Equal(t, defaultLogName, viper.GetString(logNameConfigKey))
	assert.Equal(t, defaultReportsDirName, viper.GetString(reportsDirConfigKey))
}
