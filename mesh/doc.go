// Package mesh defines the geodesic mesh data model: append-only vertices,
// triangular faces, the seed lattice they start from, and the derived
// statistics and predicates a renderer or persistence layer needs.
//
// What:
//
//   - Mesh: {Vertices, Faces}. Vertices are geographic coordinates addressed
//     by index and never removed or reused; Faces are the active triangles.
//   - Face: id, three distinct vertex indices, subdivision level (0..MaxLevel),
//     click count (0..ExhaustedClicks), display color and optional parent id.
//   - Generate: the level-0 seed mesh of 20 faces. Two lattices exist and are
//     selected explicitly with WithLattice:
//     Icosahedron (default): 12 vertices, a closed sphere.
//     PolarBand: 15 vertices on the ±66.5° circles and the equator, a band
//     that leaves the polar caps uncovered.
//   - ComputeStats: aggregate counts, recomputed on demand, never cached.
//   - Validate / IsVisible: stateless predicates computed on demand.
//
// Identity:
//
//   - Seed faces are named "f0".."f19"; the i-th child of face p is "p.i".
//     A face id therefore encodes its ancestry, and Ancestors(id) recovers
//     parent ids after the parents have left the active face list.
//
// Immutability:
//
//   - Mesh values are treated as immutable by every package in this module:
//     operations build new Vertices/Faces slices instead of editing in
//     place, so earlier snapshots stay valid. Clone returns a deep copy for
//     callers that want to edit one themselves.
//
// Errors:
//
//   - ErrInvalidVertexIndex: out-of-range or duplicate vertex index.
//   - ErrDegenerateTriangle: two or more corners coincide.
//   - ErrInvalidLevel / ErrInvalidClicks: metadata outside its range.
//   - ErrEmptyFaceID / ErrDuplicateFaceID: face identity violations.
//   - ErrFaceNotFound: lookup of an id absent from the active list.
package mesh
