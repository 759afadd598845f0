// Package vecmath provides the small set of 3D unit-vector operations the
// geodesic mesh engine is built on.
//
// What:
//
//   - Dot / Cross / Angle on r3.Vector (github.com/golang/geo/r3).
//   - Normalize with an explicit error for the zero vector.
//   - Slerp (spherical linear interpolation) with a linear fallback for
//     near-parallel inputs, and Lerp for the plain chord interpolation.
//
// Why:
//
//   - Every vertex of the mesh lives on the unit sphere. Centroids, split
//     points and arc samples are all produced by interpolating or averaging
//     unit vectors and projecting the result back onto the sphere.
//
// Numerical notes:
//
//   - Slerp divides by sin(θ). When |a·b| ≥ ParallelThreshold (0.9995) the
//     angle is too small for that division to be stable, so the result is
//     computed as normalize(lerp(a, b, t)) instead.
//   - Normalize never returns NaN; a zero-length input yields ErrZeroVector
//     and the zero vector sentinel.
//
// Errors:
//
//   - ErrZeroVector: the vector has zero (or non-finite) magnitude.
//   - ErrParamOutOfRange: interpolation parameter t outside [0,1].
package vecmath
