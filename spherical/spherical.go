// SPDX-License-Identifier: MIT
// Package: geomesh/spherical
//
// spherical.go — distances, areas, containment, centroids and arcs on the
// unit sphere.
//
// Contract:
//   • Inputs are geo.Coordinate values in degrees; nothing here validates them.
//   • Metrics never panic; degenerate triangles yield 0 area or
//     ErrDegenerateTriangle.
//   • Corner angles use atan2(|t₁×t₂|, t₁·t₂) so angles near 0 and π stay
//     accurate on long, thin faces.
//   • ContainsStrict uses side-of-edge triple products normalized by the
//     triangle's own triple product, so its margin does not shrink with
//     the face.
//
// Complexity:
//   • Every function is O(1) except Arc, which is O(n).

package spherical

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/geomesh/geo"
	"github.com/katalvlaran/geomesh/vecmath"
)

// Sentinel errors for spherical metrics.
var (
	// ErrTooFewPoints indicates an arc sample count below 2.
	ErrTooFewPoints = errors.New("spherical: arc needs at least 2 points")

	// ErrDegenerateTriangle indicates corners with no well-defined centroid.
	ErrDegenerateTriangle = errors.New("spherical: degenerate triangle")
)

const (
	// EarthRadiusKm is the mean Earth radius used by every metric here.
	EarthRadiusKm = 6371.0

	// containsTolerance absorbs rounding on edges and corners.
	containsTolerance = 1e-12

	// strictMargin is the smallest normalized edge weight ContainsStrict
	// accepts; it keeps split points off the edges so children are never
	// degenerate.
	strictMargin = 1e-9

	// minSideDet is the smallest side-of-edge determinant ContainsStrict
	// accepts; it bounds the distance from every edge plane, and so from
	// every corner, well above the coincidence threshold of the mesh.
	minSideDet = 1e-12

	// degenerateNorm bounds the corner vector sum below which no centroid
	// direction exists.
	degenerateNorm = 1e-12

	// coincidentDot is the cosine above which two unit vectors are treated
	// as the same point when sampling arcs.
	coincidentDot = 1 - 1e-15
)

// Distance returns the haversine great-circle distance between a and b in km.
// Complexity: O(1).
func Distance(a, b geo.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	h = math.Min(1, math.Max(0, h))
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// Excess returns the spherical excess (area on the unit sphere, steradians)
// of the geodesic triangle abc. Degenerate triangles yield 0.
// Complexity: O(1).
func Excess(a, b, c geo.Coordinate) float64 {
	va, vb, vc := geo.ToVector(a), geo.ToVector(b), geo.ToVector(c) // unit vectors
	// 1) Interior angles at each corner (Girard: excess = ΣA - π).
	sum := cornerAngle(va, vb, vc) + cornerAngle(vb, vc, va) + cornerAngle(vc, va, vb)
	e := sum - math.Pi

	// 2) Rounding can push flat triangles slightly negative.
	if e < 0 || math.IsNaN(e) {
		return 0
	}

	return e
}

// TriangleArea returns the area of the geodesic triangle abc in km².
func TriangleArea(a, b, c geo.Coordinate) float64 {
	return Excess(a, b, c) * EarthRadiusKm * EarthRadiusKm
}

// cornerAngle returns the interior angle at p between the great circles
// towards q and r: the angle between the tangent directions at p.
// A coincident neighbour makes the tangent undefined; the angle is then 0.
// atan2 keeps full precision where acos of the dot product would lose about
// half the mantissa (angles near 0 and π on thin faces).
func cornerAngle(p, q, r r3.Vector) float64 {
	tq, err := vecmath.Normalize(q.Sub(p.Mul(p.Dot(q)))) // tangent towards q
	if err != nil {
		return 0
	}
	tr, err := vecmath.Normalize(r.Sub(p.Mul(p.Dot(r)))) // tangent towards r
	if err != nil {
		return 0
	}

	return math.Atan2(tq.Cross(tr).Norm(), tq.Dot(tr))
}

// barycentric solves p-a = u·(b-a) + v·(c-a) in the least-squares sense
// over the plane of a, b, c. ok is false when the corners are collinear.
func barycentric(p, a, b, c r3.Vector) (u, v float64, ok bool) {
	v0 := b.Sub(a)
	v1 := c.Sub(a)
	v2 := p.Sub(a)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 || math.IsNaN(denom) {
		return 0, 0, false
	}
	inv := 1 / denom
	u = (dot11*dot02 - dot01*dot12) * inv
	v = (dot00*dot12 - dot01*dot02) * inv

	return u, v, true
}

// Contains reports whether p lies inside (or on the boundary of) the
// spherical triangle abc.
// Complexity: O(1).
func Contains(p, a, b, c geo.Coordinate) bool {
	return contains(p, a, b, c, -containsTolerance)
}

// ContainsStrict reports whether p lies strictly inside abc, away from its
// edges and corners. Each edge weight [p,b,c]/[a,b,c] (and its rotations) is
// a side-of-edge determinant scaled by the face's own, so the test keeps
// accepting interior points on faces only a few nanoradians wide.
func ContainsStrict(p, a, b, c geo.Coordinate) bool {
	vp, va, vb, vc := geo.ToVector(p), geo.ToVector(a), geo.ToVector(b), geo.ToVector(c)

	// 1) Orientation of the face; zero means the corners share a great circle.
	det := va.Dot(vb.Cross(vc))
	if det == 0 || math.IsNaN(det) {
		return false
	}

	// 2) Side-of-edge determinants, opposite corner first, flipped so that
	// inside is positive whatever the winding.
	na := vp.Dot(vb.Cross(vc)) // edge bc
	nb := va.Dot(vp.Cross(vc)) // edge ca
	nc := va.Dot(vb.Cross(vp)) // edge ab
	if det < 0 {
		det, na, nb, nc = -det, -na, -nb, -nc
	}

	// 3) Absolute floor keeps p off the corners, relative margin off the
	// edges. Antipodal points flip every sign, so they fail here too.
	for _, n := range [3]float64{na, nb, nc} {
		if n <= minSideDet || n/det <= strictMargin {
			return false
		}
	}

	return true
}

func contains(p, a, b, c geo.Coordinate, margin float64) bool {
	vp, va, vb, vc := geo.ToVector(p), geo.ToVector(a), geo.ToVector(b), geo.ToVector(c)
	// Reject the antipodal hemisphere: its points project into the plane too.
	if vp.Dot(va.Add(vb).Add(vc)) <= 0 {
		return false
	}
	u, v, ok := barycentric(vp, va, vb, vc)
	if !ok {
		return false
	}

	return u >= margin && v >= margin && u+v <= 1-margin
}

// Centroid returns the normalized vector mean of a, b and c projected back
// onto the sphere.
func Centroid(a, b, c geo.Coordinate) (geo.Coordinate, error) {
	sum := geo.ToVector(a).Add(geo.ToVector(b)).Add(geo.ToVector(c))
	if sum.Norm() < degenerateNorm {
		return geo.Coordinate{}, fmt.Errorf("Centroid: %v %v %v: %w", a, b, c, ErrDegenerateTriangle)
	}
	n, err := vecmath.Normalize(sum)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("Centroid: %w: %w", ErrDegenerateTriangle, err)
	}

	return geo.FromVector(n), nil
}

// Arc samples n ≥ 2 points along the short great-circle arc from a to b,
// at t = i/(n-1). Coincident endpoints yield n copies of a. Longitudes are
// unwrapped relative to a, so an arc crossing the antimeridian continues
// past ±180° instead of jumping to the other side of the map.
// Complexity: O(n).
func Arc(a, b geo.Coordinate, n int) ([]geo.Coordinate, error) {
	if n < 2 {
		return nil, fmt.Errorf("Arc: n=%d: %w", n, ErrTooFewPoints)
	}
	out := make([]geo.Coordinate, n)
	va, vb := geo.ToVector(a), geo.ToVector(b)
	if va.Dot(vb) >= coincidentDot {
		for i := range out {
			out[i] = a
		}

		return out, nil
	}
	prev := a.Longitude // unwrapping reference, follows the previous sample
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		v, err := vecmath.Slerp(va, vb, t)
		if err != nil {
			return nil, fmt.Errorf("Arc: %v→%v: %w", a, b, err)
		}
		pt := geo.FromVector(v)
		if i == 0 {
			pt = a
		}
		for pt.Longitude-prev > 180 {
			pt.Longitude -= 360
		}
		for pt.Longitude-prev < -180 {
			pt.Longitude += 360
		}
		prev = pt.Longitude
		out[i] = pt
	}

	return out, nil
}
