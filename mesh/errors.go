package mesh

import "errors"

var (
	// ErrInvalidVertexIndex indicates a face index outside the vertex list,
	// or the same index used twice in one face.
	ErrInvalidVertexIndex = errors.New("mesh: invalid vertex index")

	// ErrDegenerateTriangle indicates two or more coincident corners.
	ErrDegenerateTriangle = errors.New("mesh: degenerate triangle")

	// ErrInvalidLevel indicates a level outside [0, MaxLevel].
	ErrInvalidLevel = errors.New("mesh: level out of range")

	// ErrInvalidClicks indicates a click count outside [0, ExhaustedClicks].
	ErrInvalidClicks = errors.New("mesh: click count out of range")

	// ErrEmptyFaceID indicates a face without an id.
	ErrEmptyFaceID = errors.New("mesh: face id is empty")

	// ErrDuplicateFaceID indicates two active faces sharing an id.
	ErrDuplicateFaceID = errors.New("mesh: duplicate face id")

	// ErrFaceNotFound indicates an id that is not in the active face list.
	ErrFaceNotFound = errors.New("mesh: face not found")

	// ErrInvalidVertex indicates a vertex coordinate outside the geographic domain.
	ErrInvalidVertex = errors.New("mesh: invalid vertex coordinate")
)
