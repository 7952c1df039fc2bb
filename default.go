package solelog

import (
	"sync"
)

// Package-level default engine for applications that want a single shared
// log stream without threading an *Engine through every call site.

var (
	defaultMu     sync.Mutex
	defaultEngine *Engine
)

// Init constructs the package default engine from cfg. A second Init replaces
// the previous default after closing it.
func Init(cfg *Config) error {
	engine, err := New(cfg)
	if err != nil {
		return err
	}

	defaultMu.Lock()
	old := defaultEngine
	defaultEngine = engine
	defaultMu.Unlock()

	if old != nil {
		return old.Close()
	}
	return nil
}

// Close shuts down the package default engine.
func Close() error {
	defaultMu.Lock()
	engine := defaultEngine
	defaultEngine = nil
	defaultMu.Unlock()

	if engine == nil {
		return nil
	}
	return engine.Close()
}

func getDefault() *Engine {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultEngine
}

// Debug logs a message at debug level on the default engine.
func Debug(message string) error {
	if e := getDefault(); e != nil {
		return e.Debug(message)
	}
	return ErrClosed
}

// Info logs a message at info level on the default engine.
func Info(message string) error {
	if e := getDefault(); e != nil {
		return e.Info(message)
	}
	return ErrClosed
}

// Warning logs a message at warning level on the default engine.
func Warning(message string) error {
	if e := getDefault(); e != nil {
		return e.Warning(message)
	}
	return ErrClosed
}

// Error logs a message at error level on the default engine.
func Error(message string) error {
	if e := getDefault(); e != nil {
		return e.Error(message)
	}
	return ErrClosed
}

// Critical logs a message at critical level on the default engine.
func Critical(message string) error {
	if e := getDefault(); e != nil {
		return e.Critical(message)
	}
	return ErrClosed
}

// Flush forces buffered bytes of the default engine to stable storage.
func Flush() error {
	if e := getDefault(); e != nil {
		return e.Flush()
	}
	return ErrClosed
}
