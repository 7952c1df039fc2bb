package solelog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/lixenwraith/config"
	"github.com/robfig/cron/v3"
)

// Config holds all engine configuration values. It is validated once at
// engine construction and never re-interpreted afterwards; the engine keeps
// its own private copy.
type Config struct {
	// Basic settings
	Level     int64  `toml:"level"`     // Minimum level recorded; lower levels are dropped
	Name      string `toml:"name"`      // Base name for log files
	Directory string `toml:"directory"` // Created at construction if absent
	Format    string `toml:"format"`    // "txt" or "json"; also selects the file extension

	// Formatting
	ShowTimestamp   bool   `toml:"show_timestamp"`
	TimestampFormat string `toml:"timestamp_format"`
	PrettyJSON      bool   `toml:"pretty_json"` // Indented JSON objects; breaks strict JSON-Lines parsing
	IncludeSession  bool   `toml:"include_session"`

	// Size and buffering
	MaxSizeMB    int64 `toml:"max_size_mb"`    // Max size per log file; <= 0 disables rotation
	BufferSizeKB int64 `toml:"buffer_size_kb"` // File write buffer size

	// Timers
	FlushIntervalMs int64  `toml:"flush_interval_ms"` // 0 = sync to disk on every append
	RotateCron      string `toml:"rotate_cron"`       // Optional cron expression for scheduled rotation

	// Console mirroring
	EnableConsole bool   `toml:"enable_console"`
	ConsoleColor  bool   `toml:"console_color"`
	ConsoleTarget string `toml:"console_target"` // "stdout" or "stderr"

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"`
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Level:     LevelDebug,
	Name:      "log",
	Directory: "./logs",
	Format:    "txt",

	ShowTimestamp:   true,
	TimestampFormat: "2006-01-02 15:04:05.000",
	PrettyJSON:      false,
	IncludeSession:  false,

	MaxSizeMB:    5,
	BufferSizeKB: 64,

	FlushIntervalMs: 0,
	RotateCron:      "",

	EnableConsole: true,
	ConsoleColor:  false,
	ConsoleTarget: "stdout",

	InternalErrorsToStderr: false,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file and returns a validated Config
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()

	if err := loader.RegisterStruct("log.", *cfg); err != nil {
		return nil, fmt.Errorf("failed to register config struct: %w", err)
	}

	// File not found falls back to defaults
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	if err := extractConfig(loader, "log.", cfg); err != nil {
		return nil, fmt.Errorf("failed to extract config values: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies overrides
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmt.Errorf("failed to apply overrides: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from the loader into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		key := prefix + tomlTag

		val, found := loader.Get(key)
		if !found {
			continue // Use default value
		}

		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOverrides applies a map of overrides to the Config struct
func applyOverrides(cfg *Config, overrides map[string]any) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	fieldMap := make(map[string]reflect.Value)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// validate performs one-shot validation on the configuration
func (c *Config) validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmtErrorf("log name cannot be empty")
	}

	if c.Format != "txt" && c.Format != "json" {
		return fmtErrorf("invalid format: '%s' (use txt or json)", c.Format)
	}

	if strings.TrimSpace(c.Directory) == "" {
		return fmtErrorf("log directory cannot be empty")
	}

	if strings.TrimSpace(c.TimestampFormat) == "" {
		return fmtErrorf("timestamp_format cannot be empty")
	}

	if c.ConsoleTarget != "stdout" && c.ConsoleTarget != "stderr" {
		return fmtErrorf("invalid console_target: '%s' (use stdout or stderr)", c.ConsoleTarget)
	}

	if c.FlushIntervalMs < 0 {
		return fmtErrorf("flush_interval_ms cannot be negative: %d", c.FlushIntervalMs)
	}

	if c.BufferSizeKB <= 0 {
		return fmtErrorf("buffer_size_kb must be positive: %d", c.BufferSizeKB)
	}

	if c.RotateCron != "" {
		if _, err := cron.ParseStandard(c.RotateCron); err != nil {
			return fmtErrorf("invalid rotate_cron expression '%s': %w", c.RotateCron, err)
		}
	}

	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// extension returns the file extension matching the configured format.
func (c *Config) extension() string {
	return c.Format
}

// maxSizeBytes converts the configured megabyte limit to bytes.
// Non-positive values disable rotation.
func (c *Config) maxSizeBytes() int64 {
	if c.MaxSizeMB <= 0 {
		return 0
	}
	return c.MaxSizeMB * 1024 * 1024
}

// flushInterval returns the flush cadence; zero means synchronous flushing.
func (c *Config) flushInterval() time.Duration {
	if c.FlushIntervalMs <= 0 {
		return 0
	}
	return time.Duration(c.FlushIntervalMs) * time.Millisecond
}
