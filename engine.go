package solelog

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// ErrClosed is returned by level calls made after the engine has been closed.
var ErrClosed = errors.New("solelog: engine closed")

// ErrRotationFailed reports that the size limit could not be enforced. The
// record that triggered rotation was still appended, so the active file is
// oversized but no data was lost.
var ErrRotationFailed = errors.New("solelog: rotation failed")

// Engine is the logging façade. It owns the file sink, the console mirror and
// the flush scheduler, and serializes concurrent level calls into one
// consistent write order through the sink's exclusive lock.
//
// An Engine is constructed with New and moves through three lifecycle states:
// open (accepting calls), closing (draining in-flight calls) and closed
// (handles released). Multiple independent engines may coexist; there is no
// process-wide singleton beyond the optional default instance in default.go.
type Engine struct {
	cfg       *Config
	session   uuid.UUID
	startTime time.Time

	formatter *formatter
	sink      *fileSink
	console   *consoleSink
	flusher   *flushScheduler
	rotator   *cron.Cron // nil unless scheduled rotation is configured

	state State
}

// Stats is a point-in-time snapshot of engine counters.
type Stats struct {
	Records        uint64
	BytesWritten   uint64
	Rotations      uint64
	DroppedConsole uint64
	ActiveFileSize int64
	Uptime         time.Duration
}

// New validates the configuration, creates the log directory and active file,
// and returns a running engine. A validation or directory failure means no
// engine is ever created.
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, fmtErrorf("configuration cannot be nil")
	}

	cfg = cfg.Clone()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:       cfg,
		session:   uuid.New(),
		startTime: time.Now(),
	}

	sink, err := newFileSink(cfg, e.internalLog)
	if err != nil {
		return nil, err
	}
	e.sink = sink

	e.formatter = newFormatter(cfg, e.session.String())

	if cfg.EnableConsole {
		e.console = newConsoleSink(cfg)
	}

	// The rotation schedule is wired before the flush timer starts, so a
	// schedule failure leaves no background goroutine behind.
	rotator, err := newRotationSchedule(cfg.RotateCron, e.Rotate, e.internalLog)
	if err != nil {
		_ = sink.Close()
		return nil, err
	}
	e.rotator = rotator

	e.flusher = newFlushScheduler(cfg.flushInterval(), sink, e.internalLog)
	e.flusher.start()

	return e, nil
}

// Debug logs a message at debug level.
func (e *Engine) Debug(message string) error { return e.log(LevelDebug, message) }

// Info logs a message at info level.
func (e *Engine) Info(message string) error { return e.log(LevelInfo, message) }

// Warning logs a message at warning level.
func (e *Engine) Warning(message string) error { return e.log(LevelWarning, message) }

// Error logs a message at error level.
func (e *Engine) Error(message string) error { return e.log(LevelError, message) }

// Critical logs a message at critical level.
func (e *Engine) Critical(message string) error { return e.log(LevelCritical, message) }

// Debugf logs a printf-formatted message at debug level.
func (e *Engine) Debugf(format string, args ...any) error {
	return e.log(LevelDebug, fmt.Sprintf(format, args...))
}

// Infof logs a printf-formatted message at info level.
func (e *Engine) Infof(format string, args ...any) error {
	return e.log(LevelInfo, fmt.Sprintf(format, args...))
}

// Warningf logs a printf-formatted message at warning level.
func (e *Engine) Warningf(format string, args ...any) error {
	return e.log(LevelWarning, fmt.Sprintf(format, args...))
}

// Errorf logs a printf-formatted message at error level.
func (e *Engine) Errorf(format string, args ...any) error {
	return e.log(LevelError, fmt.Sprintf(format, args...))
}

// Criticalf logs a printf-formatted message at critical level.
func (e *Engine) Criticalf(format string, args ...any) error {
	return e.log(LevelCritical, fmt.Sprintf(format, args...))
}

// Dump logs a message together with a rendered value. Composite values are
// expanded with type information; useful for debugging state at a call site.
func (e *Engine) Dump(level int64, message string, v any) error {
	return e.log(level, message+": "+formatValue(v))
}

// log is the single primitive behind every level method: gate, sequence,
// format, append, mirror.
func (e *Engine) log(level int64, message string) error {
	if e.state.Closing.Load() {
		return ErrClosed
	}

	// Below the minimum level: a no-op, not an error.
	if level < e.cfg.Level {
		return nil
	}

	rec := Record{
		Level:    level,
		Message:  message,
		Sequence: e.state.Sequence.Add(1),
	}
	if e.cfg.ShowTimestamp {
		rec.TimeStamp = time.Now()
	}

	data := e.formatter.serialize(rec)

	appendErr := e.sink.Append(data)
	if appendErr != nil && !errors.Is(appendErr, ErrRotationFailed) {
		if errors.Is(appendErr, ErrClosed) {
			return ErrClosed
		}
		// IO error: surfaced to the caller, engine stays usable.
		return appendErr
	}

	// The record is on file, even when rotation failed around it.
	e.state.TotalRecords.Add(1)
	e.state.BytesWritten.Add(uint64(len(data)))

	if e.console != nil {
		if !e.console.Write(data, level) {
			e.state.DroppedConsole.Add(1)
		}
	}

	return appendErr
}

// Rotate forces an immediate rotation of the active file.
func (e *Engine) Rotate() error {
	if e.state.Closing.Load() {
		return ErrClosed
	}
	return e.sink.Rotate()
}

// Flush forces buffered bytes to stable storage.
func (e *Engine) Flush() error {
	if e.state.Closing.Load() {
		return ErrClosed
	}
	return e.sink.Flush()
}

// Close shuts the engine down: the rotation schedule and flush timer stop,
// in-flight calls drain through the sink lock, a final flush runs, and the
// file handle is released. Close is idempotent; the second call returns nil.
func (e *Engine) Close() error {
	if !e.state.Closing.CompareAndSwap(false, true) {
		return nil
	}

	if e.rotator != nil {
		<-e.rotator.Stop().Done()
	}
	e.flusher.stop()

	err := e.sink.Close()
	e.state.Closed.Store(true)
	return err
}

// Path returns the full path of the active log file.
func (e *Engine) Path() string {
	return e.sink.Path()
}

// Session returns this engine instance's unique session identifier.
func (e *Engine) Session() string {
	return e.session.String()
}

// Archives returns the files rotated out during this engine's lifetime,
// oldest first. The engine never deletes them.
func (e *Engine) Archives() []string {
	return e.sink.Archives()
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.cfg.Clone()
}

// Stats returns a snapshot of engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Records:        e.state.TotalRecords.Load(),
		BytesWritten:   e.state.BytesWritten.Load(),
		Rotations:      e.sink.Rotations(),
		DroppedConsole: e.state.DroppedConsole.Load(),
		ActiveFileSize: e.sink.Size(),
		Uptime:         time.Since(e.startTime),
	}
}

// internalLog writes engine diagnostics to stderr, if enabled. Diagnostics
// never feed back into the engine itself.
func (e *Engine) internalLog(format string, args ...any) {
	if !e.cfg.InternalErrorsToStderr {
		return
	}
	fmt.Fprintf(os.Stderr, "solelog: "+format, args...)
}
