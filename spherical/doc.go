// Package spherical implements the metric operations of the mesh engine on
// the Earth sphere: distances, triangle areas, point containment, centroids
// and great-circle arc sampling.
//
// What:
//
//   - Distance: haversine great-circle distance in kilometres (R = 6371 km).
//   - Excess / TriangleArea: spherical-excess area of a geodesic triangle,
//     in steradians and square kilometres respectively.
//   - Contains / ContainsStrict: barycentric point-in-triangle test on the
//     3D unit vectors of the four points.
//   - Centroid: normalized vector mean of the three corners.
//   - Arc: n points along the short great-circle arc from a to b.
//
// Accuracy:
//
//   - Excess clamps every dot product to [-1,1] before acos, so collinear
//     or coincident corners yield 0 rather than NaN.
//   - Contains projects p onto the plane of the triangle's corners. That is
//     exact for the corners and a good approximation for triangles up to a
//     few thousand kilometres across; it is not meant for triangles that
//     span a hemisphere. Points on the far hemisphere are always rejected.
//
// Complexity: every operation is O(1), except Arc which is O(n).
//
// Errors:
//
//   - ErrTooFewPoints: Arc requested with n < 2.
//   - ErrDegenerateTriangle: Centroid of corners whose vector sum vanishes.
package spherical
