package state

import "github.com/katalvlaran/geomesh/mesh"

// Op names a controller operation.
type Op string

// Controller operations.
const (
	OpClick     Op = "click"
	OpSubdivide Op = "subdivide"
	OpUndo      Op = "undo"
	OpRedo      Op = "redo"
	OpReset     Op = "reset"
)

// Event describes one applied controller operation.
type Event struct {
	Op         Op
	FaceID     string     // empty for undo/redo/reset
	Level      int        // level of the face before the operation
	Transition Transition // None for undo/redo/reset
}

// Observer receives controller events. Calls happen while the controller's
// write lock is held, in operation order; implementations must not call
// back into the controller.
type Observer interface {
	// Observe is called once per operation that changed the mesh.
	Observe(ev Event, st mesh.Stats)
}

type nopObserver struct{}

func (nopObserver) Observe(Event, mesh.Stats) {}
