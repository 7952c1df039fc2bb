package solelog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, LevelDebug, cfg.Level)
	assert.Equal(t, "log", cfg.Name)
	assert.Equal(t, "txt", cfg.Format)
	assert.Equal(t, int64(5), cfg.MaxSizeMB)
	assert.Equal(t, int64(0), cfg.FlushIntervalMs)
	assert.True(t, cfg.EnableConsole)
	assert.NoError(t, cfg.validate())

	// Each call hands out an independent copy
	cfg.Name = "mutated"
	assert.Equal(t, "log", DefaultConfig().Name)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{"defaults", func(cfg *Config) {}, false},
		{"json format", func(cfg *Config) { cfg.Format = "json" }, false},
		{"blank name", func(cfg *Config) { cfg.Name = "   " }, true},
		{"unknown format", func(cfg *Config) { cfg.Format = "xml" }, true},
		{"blank directory", func(cfg *Config) { cfg.Directory = "" }, true},
		{"blank timestamp format", func(cfg *Config) { cfg.TimestampFormat = " " }, true},
		{"bad console target", func(cfg *Config) { cfg.ConsoleTarget = "file" }, true},
		{"stderr console target", func(cfg *Config) { cfg.ConsoleTarget = "stderr" }, false},
		{"negative flush interval", func(cfg *Config) { cfg.FlushIntervalMs = -10 }, true},
		{"zero buffer", func(cfg *Config) { cfg.BufferSizeKB = 0 }, true},
		{"valid cron", func(cfg *Config) { cfg.RotateCron = "0 * * * *" }, false},
		{"invalid cron", func(cfg *Config) { cfg.RotateCron = "every hour" }, true},
		{"rotation disabled", func(cfg *Config) { cfg.MaxSizeMB = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewConfigFromDefaults(t *testing.T) {
	cfg, err := NewConfigFromDefaults(map[string]any{
		"level":             LevelWarning,
		"name":              "app",
		"format":            "json",
		"max_size_mb":       20,
		"flush_interval_ms": int64(100),
		"enable_console":    false,
	})
	require.NoError(t, err)

	assert.Equal(t, LevelWarning, cfg.Level)
	assert.Equal(t, "app", cfg.Name)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, int64(20), cfg.MaxSizeMB)
	assert.Equal(t, int64(100), cfg.FlushIntervalMs)
	assert.False(t, cfg.EnableConsole)

	// Untouched fields stay at defaults
	assert.Equal(t, "./logs", cfg.Directory)
}

func TestNewConfigFromDefaultsUnknownKey(t *testing.T) {
	_, err := NewConfigFromDefaults(map[string]any{"max_size": 10})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}

func TestNewConfigFromDefaultsTypeMismatch(t *testing.T) {
	_, err := NewConfigFromDefaults(map[string]any{"name": 42})
	assert.Error(t, err)
}

func TestNewConfigFromDefaultsValidates(t *testing.T) {
	_, err := NewConfigFromDefaults(map[string]any{"format": "yaml"})
	assert.Error(t, err)
}

func TestNewConfigFromFileMissing(t *testing.T) {
	// A missing file is not an error; defaults apply
	cfg, err := NewConfigFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "log", cfg.Name)
	assert.Equal(t, "txt", cfg.Format)
}

func TestConfigClone(t *testing.T) {
	original := DefaultConfig()
	clone := original.Clone()

	clone.Name = "copy"
	clone.MaxSizeMB = 99

	assert.Equal(t, "log", original.Name)
	assert.Equal(t, int64(5), original.MaxSizeMB)
}

func TestConfigHelpers(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "txt", cfg.extension())
	cfg.Format = "json"
	assert.Equal(t, "json", cfg.extension())

	cfg.MaxSizeMB = 2
	assert.Equal(t, int64(2*1024*1024), cfg.maxSizeBytes())
	cfg.MaxSizeMB = 0
	assert.Equal(t, int64(0), cfg.maxSizeBytes())
	cfg.MaxSizeMB = -3
	assert.Equal(t, int64(0), cfg.maxSizeBytes())

	cfg.FlushIntervalMs = 250
	assert.Equal(t, 250*time.Millisecond, cfg.flushInterval())
	cfg.FlushIntervalMs = 0
	assert.Equal(t, time.Duration(0), cfg.flushInterval())
}
