package mesh

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/geomesh/geo"
)

const (
	// MaxLevel is the deepest subdivision level a face can reach.
	MaxLevel = 19

	// ChargeClicks is the number of clicks a face absorbs before its next
	// click subdivides it (or exhausts it at MaxLevel).
	ChargeClicks = 10

	// ExhaustedClicks is the pinned click count of a face at MaxLevel that
	// received its final click.
	ExhaustedClicks = ChargeClicks + 1

	// SeedFaceCount is the number of level-0 faces in every seed lattice.
	SeedFaceCount = 20

	seedIDPrefix = "f"
	childIDSep   = "."
)

// Vertex is a point of the mesh, addressed by its index in Mesh.Vertices.
type Vertex = geo.Coordinate

// Face is an active triangle of the mesh.
type Face struct {
	// ID is unique among active faces and encodes the face's ancestry.
	ID string `json:"id"`

	// Vertices holds three distinct indices into Mesh.Vertices.
	Vertices [3]int `json:"vertex_indices"`

	// Level is the subdivision depth, 0 for seed faces.
	Level int `json:"level"`

	// Clicks counts charge clicks, 0..ChargeClicks, or ExhaustedClicks once
	// a MaxLevel face is exhausted.
	Clicks int `json:"click_count"`

	// Color is the display color derived from Level and Clicks.
	Color string `json:"color"`

	// ParentID is the id of the face this one was split from; empty for seeds.
	ParentID string `json:"parent_id,omitempty"`
}

// Exhausted reports whether the face reached its terminal state.
func (f Face) Exhausted() bool {
	return f.Clicks >= ExhaustedClicks
}

// Mesh is a set of vertices and the active faces over them.
type Mesh struct {
	Vertices []Vertex `json:"vertices"`
	Faces    []Face   `json:"faces"`
}

// FaceIndex returns the position of face id in m.Faces, or -1.
// Complexity: O(F).
func (m Mesh) FaceIndex(id string) int {
	for i := range m.Faces {
		if m.Faces[i].ID == id {
			return i
		}
	}

	return -1
}

// Face returns the active face with the given id.
func (m Mesh) Face(id string) (Face, bool) {
	i := m.FaceIndex(id)
	if i < 0 {
		return Face{}, false
	}

	return m.Faces[i], true
}

// HasFace reports whether id is an active face.
func (m Mesh) HasFace(id string) bool {
	return m.FaceIndex(id) >= 0
}

// Corners returns the coordinates of f's three vertices.
// Returns ErrInvalidVertexIndex if an index is out of range.
func (m Mesh) Corners(f Face) ([3]geo.Coordinate, error) {
	var out [3]geo.Coordinate
	for i, vi := range f.Vertices {
		if vi < 0 || vi >= len(m.Vertices) {
			return out, fmt.Errorf("face %s: index %d of %d: %w", f.ID, vi, len(m.Vertices), ErrInvalidVertexIndex)
		}
		out[i] = m.Vertices[vi]
	}

	return out, nil
}

// Clone returns a deep copy of m.
// Complexity: O(V + F).
func (m Mesh) Clone() Mesh {
	out := Mesh{
		Vertices: make([]Vertex, len(m.Vertices)),
		Faces:    make([]Face, len(m.Faces)),
	}
	copy(out.Vertices, m.Vertices)
	copy(out.Faces, m.Faces)

	return out
}

// Equal reports whether m and o hold the same vertices and faces in the
// same order.
func (m Mesh) Equal(o Mesh) bool {
	if len(m.Vertices) != len(o.Vertices) || len(m.Faces) != len(o.Faces) {
		return false
	}
	for i := range m.Vertices {
		if m.Vertices[i] != o.Vertices[i] {
			return false
		}
	}
	for i := range m.Faces {
		if m.Faces[i] != o.Faces[i] {
			return false
		}
	}

	return true
}

// ChildID returns the id of the i-th child of parent.
func ChildID(parent string, i int) string {
	return parent + childIDSep + strconv.Itoa(i)
}

// Ancestors returns the ids of every ancestor of id, nearest first.
// Seed ids have no ancestors.
func Ancestors(id string) []string {
	var out []string
	for {
		i := strings.LastIndex(id, childIDSep)
		if i <= 0 {
			return out
		}
		id = id[:i]
		out = append(out, id)
	}
}

func seedID(i int) string {
	return seedIDPrefix + strconv.Itoa(i)
}
