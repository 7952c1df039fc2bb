package solelog

// Builder provides a fluent API for constructing engines.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build validates the accumulated configuration and constructs the engine.
func (b *Builder) Build() (*Engine, error) {
	if b.err != nil {
		return nil, b.err
	}
	return New(b.cfg)
}

// Config returns a copy of the accumulated configuration without building.
func (b *Builder) Config() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.cfg.Clone(), nil
}

// Level sets the minimum level recorded.
func (b *Builder) Level(level int64) *Builder {
	b.cfg.Level = level
	return b
}

// LevelString sets the minimum level from a string.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := ParseLevel(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = levelVal
	return b
}

// Name sets the base name for log files.
func (b *Builder) Name(name string) *Builder {
	b.cfg.Name = name
	return b
}

// Directory sets the log directory.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// Format sets the output format, "txt" or "json".
func (b *Builder) Format(format string) *Builder {
	b.cfg.Format = format
	return b
}

// MaxSizeMB sets the maximum log file size in MB. Zero disables rotation.
func (b *Builder) MaxSizeMB(size int64) *Builder {
	b.cfg.MaxSizeMB = size
	return b
}

// FlushIntervalMs sets the flush cadence. Zero syncs on every append.
func (b *Builder) FlushIntervalMs(interval int64) *Builder {
	b.cfg.FlushIntervalMs = interval
	return b
}

// ShowTimestamp toggles the timestamp segment of each record.
func (b *Builder) ShowTimestamp(show bool) *Builder {
	b.cfg.ShowTimestamp = show
	return b
}

// TimestampFormat sets the time layout used in records.
func (b *Builder) TimestampFormat(layout string) *Builder {
	b.cfg.TimestampFormat = layout
	return b
}

// PrettyJSON toggles indented JSON objects. Pretty mode breaks strict
// JSON-Lines parsing; callers needing machine-parseable streams leave it off.
func (b *Builder) PrettyJSON(pretty bool) *Builder {
	b.cfg.PrettyJSON = pretty
	return b
}

// IncludeSession toggles the per-engine session field in JSON records.
func (b *Builder) IncludeSession(include bool) *Builder {
	b.cfg.IncludeSession = include
	return b
}

// EnableConsole toggles mirroring records to a standard stream.
func (b *Builder) EnableConsole(enable bool) *Builder {
	b.cfg.EnableConsole = enable
	return b
}

// ConsoleColor toggles per-level ANSI styling of mirrored records.
func (b *Builder) ConsoleColor(color bool) *Builder {
	b.cfg.ConsoleColor = color
	return b
}

// ConsoleTarget selects "stdout" or "stderr" for mirroring.
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// RotateCron sets an optional cron expression for scheduled rotation.
func (b *Builder) RotateCron(expr string) *Builder {
	b.cfg.RotateCron = expr
	return b
}

// BufferSizeKB sets the file write buffer size.
func (b *Builder) BufferSizeKB(size int64) *Builder {
	b.cfg.BufferSizeKB = size
	return b
}
