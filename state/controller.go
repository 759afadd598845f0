// SPDX-License-Identifier: MIT
// Package: geomesh/state
//
// controller.go — Controller, the single-writer owner of a mesh and its history.
//
// Contract:
//   • Every mutation takes the write lock; readers take the read lock and
//     receive values that must be treated as read-only.
//   • Each effective operation records exactly one history snapshot and
//     notifies the observer once, after the state is installed.
//   • No-ops record nothing and notify nobody.
//
// Concurrency:
//   • Safe for concurrent use. Observers are called with the lock held and
//     must not call back into the Controller.

package state

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/geomesh/geo"
	"github.com/katalvlaran/geomesh/mesh"
)

// Controller owns a mesh and its history and serializes every mutation.
type Controller struct {
	mu   sync.RWMutex
	mesh mesh.Mesh
	hist History
	cfg  config
}

// NewController starts from a freshly generated seed mesh.
func NewController(opts ...Option) *Controller {
	cfg := newConfig(opts...)

	return &Controller{mesh: mesh.Generate(cfg.seedOpts...), cfg: cfg}
}

// Restore starts from a previously saved mesh and history. The mesh and
// every snapshot are validated first.
func Restore(m mesh.Mesh, h History, opts ...Option) (*Controller, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("Restore: mesh: %w", err)
	}
	for i, s := range h.Past {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("Restore: past[%d]: %w", i, err)
		}
	}
	for i, s := range h.Future {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("Restore: future[%d]: %w", i, err)
		}
	}

	return &Controller{mesh: m, hist: h, cfg: newConfig(opts...)}, nil
}

// Mesh returns the current mesh. The value must be treated as read-only.
func (c *Controller) Mesh() mesh.Mesh {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.mesh
}

// History returns the current undo/redo stacks.
func (c *Controller) History() History {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.hist
}

// Snapshot returns the mesh and history as one consistent pair.
func (c *Controller) Snapshot() (mesh.Mesh, History) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.mesh, c.hist
}

// Stats recomputes the statistics of the current mesh.
func (c *Controller) Stats() mesh.Stats {
	return mesh.ComputeStats(c.Mesh())
}

// Click applies one click to face id.
func (c *Controller) Click(id string) Transition {
	return c.ClickAt(id, nil)
}

// ClickAt applies one click to face id at the given location.
func (c *Controller) ClickAt(id string, point *geo.Coordinate) Transition {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, ok := c.mesh.Face(id)
	if !ok {
		c.cfg.logger.Debug("click_unknown_face", "face", id)
		return None
	}
	out, t, err := Click(c.mesh, id, point)
	if err != nil {
		c.cfg.logger.Error("click_failed", "face", id, "err", err)
		return None
	}
	c.commit(out, Event{Op: OpClick, FaceID: id, Level: f.Level, Transition: t})

	return t
}

// Subdivide splits face id regardless of its click count; a MaxLevel face
// is exhausted instead.
func (c *Controller) Subdivide(id string, point *geo.Coordinate) (Transition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, ok := c.mesh.Face(id)
	if !ok {
		c.cfg.logger.Debug("subdivide_unknown_face", "face", id)
		return None, nil
	}
	if f.Exhausted() {
		return None, nil
	}
	out, t, err := split(c.mesh, c.mesh.FaceIndex(id), point)
	if err != nil {
		c.cfg.logger.Error("subdivide_failed", "face", id, "err", err)
		return None, err
	}
	c.commit(out, Event{Op: OpSubdivide, FaceID: id, Level: f.Level, Transition: t})

	return t, nil
}

// Undo restores the previous mesh. It reports whether anything changed.
func (c *Controller) Undo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hist.CanUndo() {
		return false // nothing recorded; no event either
	}
	c.mesh, c.hist = Undo(c.mesh, c.hist)
	c.notify(Event{Op: OpUndo})

	return true
}

// Redo re-applies the last undone mesh. It reports whether anything changed.
func (c *Controller) Redo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hist.CanRedo() {
		return false
	}
	c.mesh, c.hist = Redo(c.mesh, c.hist)
	c.notify(Event{Op: OpRedo})

	return true
}

// Reset snapshots the current mesh and starts over from a fresh seed.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.mesh
	c.mesh = mesh.Generate(c.cfg.seedOpts...)        // same lattice as NewController
	c.hist = c.hist.record(prev, c.cfg.historyLimit) // reset is undoable
	c.notify(Event{Op: OpReset})
}

// commit installs out as the current mesh if the transition changed
// anything. Caller holds the write lock.
func (c *Controller) commit(out mesh.Mesh, ev Event) {
	if ev.Transition == None {
		c.cfg.logger.Debug("noop", "op", ev.Op, "face", ev.FaceID)
		return
	}
	c.hist = c.hist.record(c.mesh, c.cfg.historyLimit)
	c.mesh = out
	c.notify(ev)
}

// notify logs ev and hands it to the observer with fresh stats.
// Caller holds the write lock.
func (c *Controller) notify(ev Event) {
	st := mesh.ComputeStats(c.mesh) // O(F), once per event
	lvl := slog.LevelDebug
	if ev.Transition == Exhausted || ev.Op == OpReset { // rare, user-visible events
		lvl = slog.LevelInfo
	}
	c.cfg.logger.Log(context.Background(), lvl, string(ev.Op),
		"face", ev.FaceID,
		"level", ev.Level,
		"transition", ev.Transition.String(),
		"faces", st.TotalFaces,
		"vertices", st.TotalVertices,
		"undo", len(c.hist.Past),
		"redo", len(c.hist.Future),
	)
	c.cfg.observer.Observe(ev, st)
}
