package compat

import (
	"fmt"
	"strings"

	"github.com/solelog/solelog"
	"github.com/valyala/fasthttp"
)

// FastHTTPAdapter wraps a solelog.Engine to implement fasthttp's Logger
// interface (a single Printf method).
type FastHTTPAdapter struct {
	engine        *solelog.Engine
	defaultLevel  int64
	levelDetector func(string) int64 // Detects log level from message content
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(engine *solelog.Engine, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		engine:        engine,
		defaultLevel:  solelog.LevelInfo,
		levelDetector: DetectLogLevel,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the default log level for Printf calls
func WithDefaultLevel(level int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content
func WithLevelDetector(detector func(string) int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected != 0 {
			level = detected
		}
	}

	switch level {
	case solelog.LevelDebug:
		_ = a.engine.Debug("fasthttp: " + msg)
	case solelog.LevelWarning:
		_ = a.engine.Warning("fasthttp: " + msg)
	case solelog.LevelError:
		_ = a.engine.Error("fasthttp: " + msg)
	case solelog.LevelCritical:
		_ = a.engine.Critical("fasthttp: " + msg)
	default:
		_ = a.engine.Info("fasthttp: " + msg)
	}
}

// DetectLogLevel attempts to detect log level from message content
func DetectLogLevel(msg string) int64 {
	msgLower := strings.ToLower(msg)

	if strings.Contains(msgLower, "panic") ||
		strings.Contains(msgLower, "fatal") {
		return solelog.LevelCritical
	}

	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") {
		return solelog.LevelError
	}

	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated") {
		return solelog.LevelWarning
	}

	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return solelog.LevelDebug
	}

	return solelog.LevelInfo
}
