// SPDX-License-Identifier: MIT
// Package: geomesh/state
//
// machine.go — the per-face click state machine as pure functions.
//
// Contract:
//   • clicks 0..9 → Charged (count + 1); the click at 10 → Subdivided;
//     at MaxLevel that click → Exhausted (clicks pinned at 11).
//   • Inputs are never mutated; every change returns a new Mesh.
//   • Unknown or exhausted faces are no-ops (None, nil error).
//   • Only a corrupt mesh produces an error.
//
// Complexity:
//   • Click: O(F) (face lookup and face-list copy), plus Split on subdivision.

package state

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/geomesh/geo"
	"github.com/katalvlaran/geomesh/mesh"
	"github.com/katalvlaran/geomesh/subdivide"
)

// Transition names what an operation did to its face.
type Transition int

const (
	// None: nothing changed (unknown id, exhausted face, or rejected input).
	None Transition = iota

	// Charged: the click count went up by one.
	Charged

	// Subdivided: the face was replaced by its three children.
	Subdivided

	// Exhausted: a MaxLevel face reached its terminal color.
	Exhausted
)

// String returns a readable name for logs and metrics labels.
func (t Transition) String() string {
	switch t {
	case None:
		return "none"
	case Charged:
		return "charged"
	case Subdivided:
		return "subdivided"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Click applies one click to face id and returns the new mesh. point, when
// non-nil, is the clicked location and becomes the split point if the
// click subdivides and the point lies inside the face. m is not modified.
//
// An unknown or exhausted face yields (m, None, nil). A non-nil error means
// the mesh itself is corrupt (for example a face with an invalid index);
// m is then returned unchanged.
func Click(m mesh.Mesh, id string, point *geo.Coordinate) (mesh.Mesh, Transition, error) {
	i := m.FaceIndex(id)
	if i < 0 {
		return m, None, nil // unknown ids are ignored, not errors
	}
	f := m.Faces[i] // value copy; m.Faces is never written
	switch {
	case f.Exhausted():
		return m, None, nil
	case f.Clicks < mesh.ChargeClicks:
		f.Clicks++
		f.Color = mesh.ColorFor(f.Level, f.Clicks) // colour follows the count

		return replaceFace(m, i, f), Charged, nil
	default:
		return split(m, i, point)
	}
}

// split subdivides face i, or exhausts it when it is at MaxLevel.
func split(m mesh.Mesh, i int, point *geo.Coordinate) (mesh.Mesh, Transition, error) {
	f := m.Faces[i]
	out, _, err := subdivide.Face(m, f.ID, point)
	switch {
	case errors.Is(err, subdivide.ErrNotSubdividable):
		// Level cap: pin the face in its terminal state instead of splitting.
		f.Clicks = mesh.ExhaustedClicks
		f.Color = mesh.ExhaustedColor

		return replaceFace(m, i, f), Exhausted, nil
	case err != nil:
		return m, None, fmt.Errorf("click %s: %w", f.ID, err)
	}

	return out, Subdivided, nil
}

// replaceFace returns a mesh whose face list is a fresh copy of m's with
// position i set to f. The vertex list is shared; it is never written.
func replaceFace(m mesh.Mesh, i int, f mesh.Face) mesh.Mesh {
	faces := make([]mesh.Face, len(m.Faces))
	copy(faces, m.Faces)
	faces[i] = f

	return mesh.Mesh{Vertices: m.Vertices, Faces: faces}
}

// ApplyClick clicks face id and records the previous mesh in the history
// when anything changed.
func ApplyClick(m mesh.Mesh, h History, id string) (mesh.Mesh, History) {
	return ApplyClickAt(m, h, id, nil)
}

// ApplyClickAt is ApplyClick with the clicked location as split point.
func ApplyClickAt(m mesh.Mesh, h History, id string, point *geo.Coordinate) (mesh.Mesh, History) {
	out, t, err := Click(m, id, point)
	if err != nil || t == None {
		return m, h
	}

	return out, h.record(m, 0)
}

// Subdivide splits face id regardless of its click count. A MaxLevel face
// is exhausted instead. Unknown ids are no-ops. Only a corrupt mesh yields
// an error.
func Subdivide(m mesh.Mesh, h History, id string, point *geo.Coordinate) (mesh.Mesh, History, Transition, error) {
	i := m.FaceIndex(id)
	if i < 0 || m.Faces[i].Exhausted() {
		return m, h, None, nil
	}
	out, t, err := split(m, i, point)
	if err != nil {
		return m, h, None, err
	}

	return out, h.record(m, 0), t, nil
}
