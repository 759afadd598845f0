// Package state drives the mesh with click events and keeps a linear
// undo/redo history of whole-mesh snapshots.
//
// Per-face state machine:
//
//	clicks 0..9   --click-->  clicks+1, recolored                (Charged)
//	clicks 10     --click-->  level < MaxLevel: split into 3     (Subdivided)
//	                          level = MaxLevel: clicks 11, gray  (Exhausted)
//	clicks 11     --click-->  no change                          (None)
//
// Children start at clicks 0 one level deeper. An explicit Subdivide of a
// MaxLevel face follows the same Exhausted transition instead of failing.
//
// History:
//
//   - Every operation that changes the mesh pushes a deep copy of the
//     previous mesh onto Past and clears Future.
//   - Undo moves the current mesh to Future and restores the top of Past;
//     Redo is symmetric. Both are no-ops on an empty stack.
//   - Reset pushes the current mesh and replaces it with a fresh seed.
//
// Two APIs:
//
//   - Pure functions (ApplyClick, Subdivide, Undo, Redo, Reset) take and
//     return (mesh.Mesh, History) values and hold no state of their own.
//   - Controller owns one mesh and history behind a sync.RWMutex, serializing
//     writers so that each mutation reads and replaces the whole face list
//     atomically. Readers get immutable values and never see partial updates.
//     It also logs transitions (log/slog) and reports them to an Observer.
//
// Unknown face ids are no-ops, never errors: a UI may click a face that a
// concurrent update has already replaced.
package state
