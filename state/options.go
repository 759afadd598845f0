package state

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/geomesh/mesh"
)

// Option configures a Controller.
type Option func(*config)

type config struct {
	logger       *slog.Logger
	observer     Observer
	historyLimit int
	seedOpts     []mesh.Option
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes controller logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("state: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithObserver reports every transition and the stats after it to o.
// Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("state: WithObserver(nil)")
	}
	return func(c *config) {
		c.observer = o
	}
}

// WithHistoryLimit keeps at most n undo snapshots, dropping the oldest.
// 0 means unlimited. Panics on n < 0.
func WithHistoryLimit(n int) Option {
	if n < 0 {
		panic("state: WithHistoryLimit(n<0)")
	}
	return func(c *config) {
		c.historyLimit = n
	}
}

// WithSeedOptions sets the options used to generate the initial and reset
// meshes.
func WithSeedOptions(opts ...mesh.Option) Option {
	return func(c *config) {
		c.seedOpts = append([]mesh.Option(nil), opts...)
	}
}
