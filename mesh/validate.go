package mesh

import (
	"fmt"

	"github.com/katalvlaran/geomesh/geo"
)

// coincidentChord is the unit-sphere chord length below which two
// vertices are considered the same point.
const coincidentChord = 1e-12

// NewFace builds a level/parent-tagged face over vertices, with zero clicks
// and the matching color. It rejects out-of-range or repeated indices and
// coincident corners.
// Complexity: O(1).
func NewFace(id string, idx [3]int, level int, parentID string, vertices []Vertex) (Face, error) {
	f := Face{
		ID:       id,
		Vertices: idx,
		Level:    level,
		Color:    ColorFor(level, 0),
		ParentID: parentID,
	}
	if err := validateFace(f, vertices); err != nil {
		return Face{}, fmt.Errorf("NewFace: %w", err)
	}

	return f, nil
}

// Validate checks a single face against the vertex list of m: id present,
// level and clicks in range, indices distinct and in range, corners not
// coincident. It is a pure predicate; nothing is cached on the face.
func Validate(f Face, m Mesh) error {
	return validateFace(f, m.Vertices)
}

// Validate checks every vertex and face of m and that face ids are unique.
// Complexity: O(V + F).
func (m Mesh) Validate() error {
	for i, v := range m.Vertices {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("vertex %d: %v: %w", i, err, ErrInvalidVertex)
		}
	}
	seen := make(map[string]struct{}, len(m.Faces))
	for _, f := range m.Faces {
		if err := validateFace(f, m.Vertices); err != nil {
			return err
		}
		if _, dup := seen[f.ID]; dup {
			return fmt.Errorf("face %s: %w", f.ID, ErrDuplicateFaceID)
		}
		seen[f.ID] = struct{}{}
	}

	return nil
}

func validateFace(f Face, vertices []Vertex) error {
	if f.ID == "" {
		return ErrEmptyFaceID
	}
	if f.Level < 0 || f.Level > MaxLevel {
		return fmt.Errorf("face %s: level %d: %w", f.ID, f.Level, ErrInvalidLevel)
	}
	if f.Clicks < 0 || f.Clicks > ExhaustedClicks || (f.Clicks == ExhaustedClicks && f.Level != MaxLevel) {
		return fmt.Errorf("face %s: clicks %d at level %d: %w", f.ID, f.Clicks, f.Level, ErrInvalidClicks)
	}
	for i, vi := range f.Vertices {
		if vi < 0 || vi >= len(vertices) {
			return fmt.Errorf("face %s: index %d of %d: %w", f.ID, vi, len(vertices), ErrInvalidVertexIndex)
		}
		for j := 0; j < i; j++ {
			if f.Vertices[j] == vi {
				return fmt.Errorf("face %s: index %d repeated: %w", f.ID, vi, ErrInvalidVertexIndex)
			}
		}
	}
	for i := 0; i < 3; i++ {
		a := geo.ToVector(vertices[f.Vertices[i]])
		b := geo.ToVector(vertices[f.Vertices[(i+1)%3]])
		if a.Sub(b).Norm() < coincidentChord {
			return fmt.Errorf("face %s: corners %d and %d coincide: %w",
				f.ID, f.Vertices[i], f.Vertices[(i+1)%3], ErrDegenerateTriangle)
		}
	}

	return nil
}
