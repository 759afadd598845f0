package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/geomesh/internal/config"
	"github.com/katalvlaran/geomesh/internal/logger"
	"github.com/katalvlaran/geomesh/mesh"
	"github.com/katalvlaran/geomesh/metrics"
	"github.com/katalvlaran/geomesh/state"
	"github.com/katalvlaran/geomesh/store"
)

// app is the state shared by every subcommand for one invocation.
type app struct {
	key          string
	lattice      string
	lonOffset    float64
	historyLimit int
	metricsFile  string

	log      *slog.Logger
	store    store.Store
	closeFn  func() error
	registry *prometheus.Registry
	metrics  *metrics.Collector
}

// open reads the environment and connects the store.
func (a *app) open(ctx context.Context) error {
	config.LoadEnv(".env")
	a.log = logger.Setup()
	cfg := config.FromEnv()
	a.log.Debug("config", "backend", cfg.Backend, "key", a.key)

	s, closeFn, err := config.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	a.store, a.closeFn = s, closeFn
	a.registry = prometheus.NewRegistry()
	a.metrics = metrics.NewCollector(a.registry)

	return nil
}

// close flushes metrics and releases the store.
func (a *app) close() error {
	var errs []error
	if a.metricsFile != "" && a.registry != nil {
		if err := prometheus.WriteToTextfile(a.metricsFile, a.registry); err != nil {
			errs = append(errs, fmt.Errorf("metrics: %w", err))
		}
	}
	if a.closeFn != nil {
		errs = append(errs, a.closeFn())
	}

	return errors.Join(errs...)
}

func (a *app) seedOptions() ([]mesh.Option, error) {
	var l mesh.Lattice
	switch strings.ToLower(a.lattice) {
	case "", "icosahedron":
		l = mesh.Icosahedron
	case "polarband", "polar-band":
		l = mesh.PolarBand
	default:
		return nil, fmt.Errorf("unknown lattice %q", a.lattice)
	}
	if math.IsNaN(a.lonOffset) || math.IsInf(a.lonOffset, 0) {
		return nil, fmt.Errorf("longitude offset %v is not finite", a.lonOffset)
	}

	return []mesh.Option{mesh.WithLattice(l), mesh.WithLongitudeOffset(a.lonOffset)}, nil
}

func (a *app) controllerOptions() ([]state.Option, error) {
	if a.historyLimit < 0 {
		return nil, fmt.Errorf("history limit %d is negative", a.historyLimit)
	}
	seed, err := a.seedOptions()
	if err != nil {
		return nil, err
	}

	return []state.Option{
		state.WithLogger(a.log),
		state.WithObserver(a.metrics),
		state.WithHistoryLimit(a.historyLimit),
		state.WithSeedOptions(seed...),
	}, nil
}

// load restores the session under a.key, or starts a fresh one.
func (a *app) load(ctx context.Context) (*state.Controller, error) {
	opts, err := a.controllerOptions()
	if err != nil {
		return nil, err
	}
	doc, err := a.store.Load(ctx, a.key)
	if errors.Is(err, store.ErrNotFound) {
		a.log.Info("session_new", "key", a.key)
		return state.NewController(opts...), nil
	}
	if err != nil {
		return nil, err
	}

	return state.Restore(doc.Mesh, doc.History, opts...)
}

func (a *app) save(ctx context.Context, c *state.Controller) error {
	m, h := c.Snapshot()
	if err := a.store.Save(ctx, a.key, store.Document{Mesh: m, History: h}); err != nil {
		return err
	}
	a.log.Debug("session_saved", "key", a.key, "faces", len(m.Faces), "undo", len(h.Past))

	return nil
}
