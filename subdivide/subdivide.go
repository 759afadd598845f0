// SPDX-License-Identifier: MIT
// Package: geomesh/subdivide
//
// subdivide.go — the three-way face split: compute a Delta, then Apply it.
//
// Contract:
//   • Split never mutates its input; Apply returns a mesh sharing no
//     backing arrays with m.
//   • One new vertex and three children (n,a,b), (n,b,c), (n,c,a) per split;
//     child i has id parent.i, level parent+1, zero clicks.
//   • Faces at mesh.MaxLevel yield ErrNotSubdividable.
//   • A Delta is bound to the vertex count it was computed against;
//     applying it elsewhere yields ErrStaleDelta.
//
// Complexity:
//   • Split: O(F) lookup + O(V) vertex copy for child validation.
//   • Apply: O(V + F).

package subdivide

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/geomesh/geo"
	"github.com/katalvlaran/geomesh/mesh"
	"github.com/katalvlaran/geomesh/spherical"
)

const (
	methodSplit = "Split" // context tag for error wrapping
	methodApply = "Apply" // context tag for error wrapping

	// ChildCount is the number of faces produced by one split.
	ChildCount = 3
)

var (
	// ErrNotSubdividable indicates a face already at mesh.MaxLevel.
	ErrNotSubdividable = errors.New("subdivide: face is at maximum level")

	// ErrFaceNotFound aliases mesh.ErrFaceNotFound for errors.Is checks.
	ErrFaceNotFound = mesh.ErrFaceNotFound

	// ErrStaleDelta indicates a Delta applied to a mesh whose vertex list
	// no longer matches the one it was computed against.
	ErrStaleDelta = errors.New("subdivide: delta does not match mesh")
)

// Delta is the structural change of one split.
type Delta struct {
	// VertexBase is len(mesh.Vertices) when the split was computed; the
	// new vertices take indices VertexBase, VertexBase+1, ...
	VertexBase int

	// NewVertices are appended to the vertex list.
	NewVertices []mesh.Vertex

	// NewFaces replace the parent in the active face list.
	NewFaces []mesh.Face

	// RemovedParentID is the id of the face that leaves the active list.
	RemovedParentID string

	// UsedSplitPoint is true when the caller's split point was accepted,
	// false when the centroid was used instead.
	UsedSplitPoint bool
}

// SplitPoint chooses the new vertex for corners: split when it lies
// strictly inside the triangle, the spherical centroid otherwise.
func SplitPoint(corners [3]geo.Coordinate, split *geo.Coordinate) (geo.Coordinate, bool, error) {
	if split != nil && split.Validate() == nil &&
		spherical.ContainsStrict(*split, corners[0], corners[1], corners[2]) {
		return *split, true, nil
	}
	c, err := spherical.Centroid(corners[0], corners[1], corners[2])
	if err != nil {
		return geo.Coordinate{}, false, err
	}

	return c, false, nil
}

// Split computes the three-way split of face faceID around split (or the
// centroid when split is nil or outside the face). m is not modified.
// Complexity: O(F) to locate the face, O(1) for the split itself.
func Split(m mesh.Mesh, faceID string, split *geo.Coordinate) (Delta, error) {
	// 1) Locate the parent and enforce the level cap.
	parent, ok := m.Face(faceID)
	if !ok {
		return Delta{}, fmt.Errorf("%s: %s: %w", methodSplit, faceID, ErrFaceNotFound)
	}
	if parent.Level >= mesh.MaxLevel {
		return Delta{}, fmt.Errorf("%s: %s at level %d: %w", methodSplit, faceID, parent.Level, ErrNotSubdividable)
	}
	corners, err := m.Corners(parent)
	if err != nil {
		return Delta{}, fmt.Errorf("%s: %w", methodSplit, err)
	}
	// 2) Choose the new vertex: caller's point if strictly inside, else centroid.
	pt, used, err := SplitPoint(corners, split)
	if err != nil {
		return Delta{}, fmt.Errorf("%s: %s: %w", methodSplit, faceID, err)
	}

	// 3) The new vertex takes the next index.
	base := len(m.Vertices)
	// Children are validated against the extended vertex list without
	// touching m's backing array.
	ext := make([]mesh.Vertex, base+1)
	copy(ext, m.Vertices)
	ext[base] = pt

	// 4) Fan the parent's edges around the new vertex, keeping its winding.
	a, b, c := parent.Vertices[0], parent.Vertices[1], parent.Vertices[2]
	tris := [ChildCount][3]int{{base, a, b}, {base, b, c}, {base, c, a}} // child i owns edge i
	children := make([]mesh.Face, 0, ChildCount)
	for i, idx := range tris {
		f, err := mesh.NewFace(mesh.ChildID(parent.ID, i), idx, parent.Level+1, parent.ID, ext)
		if err != nil {
			return Delta{}, fmt.Errorf("%s: %s child %d: %w", methodSplit, faceID, i, err)
		}
		children = append(children, f)
	}

	return Delta{
		VertexBase:      base,
		NewVertices:     []mesh.Vertex{pt},
		NewFaces:        children,
		RemovedParentID: parent.ID,
		UsedSplitPoint:  used,
	}, nil
}

// Apply merges d into a new Mesh value. m is not modified and shares no
// backing arrays with the result.
// Complexity: O(V + F).
func Apply(m mesh.Mesh, d Delta) (mesh.Mesh, error) {
	if d.VertexBase != len(m.Vertices) {
		return m, fmt.Errorf("%s: vertex base %d, mesh has %d: %w", methodApply, d.VertexBase, len(m.Vertices), ErrStaleDelta)
	}
	at := m.FaceIndex(d.RemovedParentID)
	if at < 0 {
		return m, fmt.Errorf("%s: %s: %w", methodApply, d.RemovedParentID, ErrFaceNotFound)
	}

	// Fresh backing arrays: parent removed in place, children appended last.
	out := mesh.Mesh{
		Vertices: make([]mesh.Vertex, 0, len(m.Vertices)+len(d.NewVertices)),
		Faces:    make([]mesh.Face, 0, len(m.Faces)-1+len(d.NewFaces)),
	}
	out.Vertices = append(out.Vertices, m.Vertices...)
	out.Vertices = append(out.Vertices, d.NewVertices...)
	out.Faces = append(out.Faces, m.Faces[:at]...)
	out.Faces = append(out.Faces, m.Faces[at+1:]...)
	out.Faces = append(out.Faces, d.NewFaces...)

	return out, nil
}

// Face splits faceID and returns the resulting mesh and the removed face
// id. An id that is not an active face is a no-op: m is returned with an
// empty id and a nil error.
func Face(m mesh.Mesh, faceID string, split *geo.Coordinate) (mesh.Mesh, string, error) {
	d, err := Split(m, faceID, split)
	if errors.Is(err, ErrFaceNotFound) {
		return m, "", nil
	}
	if err != nil {
		return m, "", err
	}
	out, err := Apply(m, d)
	if err != nil {
		return m, "", err
	}

	return out, d.RemovedParentID, nil
}
