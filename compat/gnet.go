package compat

import (
	"fmt"
	"os"

	"github.com/panjf2000/gnet/v2/pkg/logging"
	"github.com/solelog/solelog"
)

// GnetAdapter wraps a solelog.Engine to implement gnet's logging.Logger
// interface.
type GnetAdapter struct {
	engine       *solelog.Engine
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(engine *solelog.Engine, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		engine: engine,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

var _ logging.Logger = (*GnetAdapter)(nil)

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	_ = a.engine.Debug("gnet: " + fmt.Sprintf(format, args...))
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	_ = a.engine.Info("gnet: " + fmt.Sprintf(format, args...))
}

// Warnf logs at warning level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	_ = a.engine.Warning("gnet: " + fmt.Sprintf(format, args...))
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	_ = a.engine.Error("gnet: " + fmt.Sprintf(format, args...))
}

// Fatalf logs at critical level and triggers the fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_ = a.engine.Critical("gnet: " + msg)

	// Ensure the record reaches disk before exit
	_ = a.engine.Flush()

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
