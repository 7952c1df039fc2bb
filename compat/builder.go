// Package compat provides adapters that plug a solelog.Engine into
// third-party frameworks expecting their own logger interfaces.
package compat

import (
	"fmt"

	"github.com/solelog/solelog"
)

// Builder creates configured adapters for gnet and fasthttp.
// It can use an existing *solelog.Engine or construct one from a Config.
type Builder struct {
	engine *solelog.Engine
	cfg    *solelog.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithEngine specifies an existing engine to use for the adapters.
// Recommended for applications that already have a central log stream.
// If this is set WithConfig is ignored.
func (b *Builder) WithEngine(e *solelog.Engine) *Builder {
	if e == nil {
		b.err = fmt.Errorf("compat: provided engine cannot be nil")
		return b
	}
	b.engine = e
	return b
}

// WithConfig provides a configuration for a new engine instance.
// Used only if an existing engine is NOT provided via WithEngine.
func (b *Builder) WithConfig(cfg *solelog.Config) *Builder {
	b.cfg = cfg
	return b
}

// getEngine resolves the engine to be used, creating one if necessary
func (b *Builder) getEngine() (*solelog.Engine, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.engine != nil {
		return b.engine, nil
	}

	cfg := b.cfg
	if cfg == nil {
		cfg = solelog.DefaultConfig()
	}

	engine, err := solelog.New(cfg)
	if err != nil {
		return nil, err
	}

	// Cache for subsequent builds with this builder
	b.engine = engine
	return engine, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	e, err := b.getEngine()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(e, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	e, err := b.getEngine()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(e, opts...), nil
}

// GetEngine returns the underlying engine, initializing it if needed.
func (b *Builder) GetEngine() (*solelog.Engine, error) {
	return b.getEngine()
}
