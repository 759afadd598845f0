// Package subdivide splits one triangular face of a mesh into three child
// faces around a single interior point.
//
// Algorithm (interior split):
//
//   - The new vertex is the caller's split point when it lies strictly inside
//     the spherical triangle, otherwise the normalized spherical centroid of
//     the three corners.
//   - For parent corners (a, b, c) and new vertex n the children are
//     (n, a, b), (n, b, c), (n, c, a), each at parent level + 1 with zero
//     clicks and ParentID set. Every split adds one vertex and three faces,
//     so face count grows by two per split.
//
// The edge-midpoint quadrisection used by classic icospheres is not offered:
// it would change vertex counts, child ids and the click-driven level
// semantics, and the two schemes cannot be mixed in one mesh.
//
// Contract:
//
//   - Split never mutates its input; it returns a Delta.
//   - Apply merges a Delta into a new Mesh value: vertices appended, parent
//     removed from the active list, children appended.
//   - Face is the one-shot Split+Apply; an unknown face id is a no-op.
//
// Errors:
//
//   - ErrNotSubdividable: the face is already at mesh.MaxLevel.
//   - ErrFaceNotFound: Split/Apply referenced an id not in the active list.
//   - ErrStaleDelta: Apply called on a mesh the Delta was not computed from.
package subdivide
