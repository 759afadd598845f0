package state

import "github.com/katalvlaran/geomesh/mesh"

// History is a linear undo/redo stack of mesh snapshots, oldest first.
type History struct {
	Past   []mesh.Mesh `json:"past"`
	Future []mesh.Mesh `json:"future"`
}

// CanUndo reports whether Undo has a snapshot to restore.
func (h History) CanUndo() bool { return len(h.Past) > 0 }

// CanRedo reports whether Redo has a snapshot to restore.
func (h History) CanRedo() bool { return len(h.Future) > 0 }

// record pushes a deep copy of m onto Past, clears Future and trims Past
// to limit entries (0 means unlimited). h's backing arrays are not written.
func (h History) record(m mesh.Mesh, limit int) History {
	past := make([]mesh.Mesh, 0, len(h.Past)+1)
	past = append(past, h.Past...)
	past = append(past, m.Clone())
	if limit > 0 && len(past) > limit {
		past = past[len(past)-limit:]
	}

	return History{Past: past}
}

// Undo restores the most recent snapshot and moves m onto Future.
// With nothing to undo it returns its inputs unchanged.
func Undo(m mesh.Mesh, h History) (mesh.Mesh, History) {
	if !h.CanUndo() {
		return m, h
	}
	last := len(h.Past) - 1
	prev := h.Past[last]
	future := make([]mesh.Mesh, 0, len(h.Future)+1)
	future = append(future, h.Future...)
	future = append(future, m.Clone())

	return prev.Clone(), History{Past: h.Past[:last:last], Future: future}
}

// Redo re-applies the most recently undone snapshot and moves m onto Past.
// With nothing to redo it returns its inputs unchanged.
func Redo(m mesh.Mesh, h History) (mesh.Mesh, History) {
	if !h.CanRedo() {
		return m, h
	}
	last := len(h.Future) - 1
	next := h.Future[last]
	past := make([]mesh.Mesh, 0, len(h.Past)+1)
	past = append(past, h.Past...)
	past = append(past, m.Clone())

	return next.Clone(), History{Past: past, Future: h.Future[:last:last]}
}

// Reset snapshots m and replaces it with a freshly generated seed mesh.
func Reset(m mesh.Mesh, h History, opts ...mesh.Option) (mesh.Mesh, History) {
	return mesh.Generate(opts...), h.record(m, 0)
}
