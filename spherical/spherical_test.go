package spherical_test

import (
	"math"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geomesh/geo"
	"github.com/katalvlaran/geomesh/spherical"
)

// TestDistance_QuarterCircle: (0,0)→(0,90) is a quarter of the circumference.
func TestDistance_QuarterCircle(t *testing.T) {
	t.Parallel()

	d := spherical.Distance(geo.New(0, 0), geo.New(0, 90))
	assert.InDelta(t, 10007.5, d, 1)
	assert.InDelta(t, math.Pi*spherical.EarthRadiusKm/2, d, 1e-6)
}

// TestDistance_AgainstS2 cross-checks haversine with s2.LatLng.Distance.
func TestDistance_AgainstS2(t *testing.T) {
	t.Parallel()

	pairs := [][2]geo.Coordinate{
		{geo.New(51.5074, -0.1278), geo.New(40.7128, -74.0060)},
		{geo.New(-33.8688, 151.2093), geo.New(35.6762, 139.6503)},
		{geo.New(10, 179.5), geo.New(-10, -179.5)},
		{geo.New(0, 0), geo.New(0, 0)},
		{geo.New(90, 0), geo.New(-90, 0)},
	}
	for _, p := range pairs {
		want := p[0].LatLng().Distance(p[1].LatLng()).Radians() * spherical.EarthRadiusKm
		assert.InDelta(t, want, spherical.Distance(p[0], p[1]), 1e-6, "%v→%v", p[0], p[1])
	}
}

// TestExcess_Octant: the triangle (0,0),(0,90),(90,0) covers 1/8 of the sphere.
func TestExcess_Octant(t *testing.T) {
	t.Parallel()

	e := spherical.Excess(geo.New(0, 0), geo.New(0, 90), geo.New(90, 0))
	assert.InDelta(t, math.Pi/2, e, 1e-12)

	area := spherical.TriangleArea(geo.New(0, 0), geo.New(0, 90), geo.New(90, 0))
	earth := 4 * math.Pi * spherical.EarthRadiusKm * spherical.EarthRadiusKm
	assert.InDelta(t, earth/8, area, 1e-3)
}

// TestTriangleArea_AgainstS2 compares the excess with s2.PointArea on small and
// mid-sized triangles.
func TestTriangleArea_AgainstS2(t *testing.T) {
	t.Parallel()

	tris := [][3]geo.Coordinate{
		{geo.New(10, 10), geo.New(12, 11), geo.New(11, 14)},
		{geo.New(-40, 100), geo.New(-35, 120), geo.New(-20, 110)},
		{geo.New(60, -30), geo.New(26.5, -60), geo.New(26.5, 0)},
	}
	for _, tri := range tris {
		want := s2.PointArea(tri[0].Point(), tri[1].Point(), tri[2].Point())
		got := spherical.Excess(tri[0], tri[1], tri[2])
		assert.InDelta(t, want, got, 1e-9, "%v", tri)
	}
}

// TestExcess_Degenerate: coincident or collinear corners give 0, never NaN.
func TestExcess_Degenerate(t *testing.T) {
	t.Parallel()

	a, b := geo.New(0, 0), geo.New(0, 30)
	assert.Equal(t, 0.0, spherical.Excess(a, a, b))
	assert.Equal(t, 0.0, spherical.Excess(a, a, a))

	e := spherical.Excess(a, geo.New(0, 15), b)
	assert.False(t, math.IsNaN(e))
	assert.InDelta(t, 0, e, 1e-12)
}

// TestContains_CornersAndCentroid: corners and centroid are inside.
func TestContains_CornersAndCentroid(t *testing.T) {
	t.Parallel()

	a, b, c := geo.New(10, 10), geo.New(20, 15), geo.New(12, 25)
	for _, p := range []geo.Coordinate{a, b, c} {
		assert.True(t, spherical.Contains(p, a, b, c), "corner %v", p)
		assert.False(t, spherical.ContainsStrict(p, a, b, c), "corner %v strict", p)
	}
	ctr, err := spherical.Centroid(a, b, c)
	require.NoError(t, err)
	assert.True(t, spherical.Contains(ctr, a, b, c))
	assert.True(t, spherical.ContainsStrict(ctr, a, b, c))

	// Winding does not matter.
	assert.True(t, spherical.Contains(ctr, c, b, a))
}

func TestContains_Outside(t *testing.T) {
	t.Parallel()

	a, b, c := geo.New(10, 10), geo.New(20, 15), geo.New(12, 25)
	assert.False(t, spherical.Contains(geo.New(-10, 0), a, b, c))
	assert.False(t, spherical.Contains(geo.New(30, 30), a, b, c))

	// The antipode of the centroid projects near the centroid but is rejected.
	ctr, err := spherical.Centroid(a, b, c)
	require.NoError(t, err)
	anti := geo.FromVector(geo.ToVector(ctr).Mul(-1))
	assert.False(t, spherical.Contains(anti, a, b, c))

	// Coincident corners contain nothing.
	assert.False(t, spherical.Contains(geo.New(0, 5), geo.New(0, 0), geo.New(0, 0), geo.New(0, 10)))
}

func TestCentroid_Degenerate(t *testing.T) {
	t.Parallel()

	_, err := spherical.Centroid(geo.New(0, 0), geo.New(0, 120), geo.New(0, -120))
	require.ErrorIs(t, err, spherical.ErrDegenerateTriangle)
}

// TestArc_Quarter samples the equator from 0° to 90°.
func TestArc_Quarter(t *testing.T) {
	t.Parallel()

	pts, err := spherical.Arc(geo.New(0, 0), geo.New(0, 90), 4)
	require.NoError(t, err)
	require.Len(t, pts, 4)
	for i, p := range pts {
		assert.InDelta(t, 0, p.Latitude, 1e-9)
		assert.InDelta(t, float64(i)*30, p.Longitude, 1e-9)
	}
}

// TestArc_GreatCircle checks that samples stay on the arc: distances from
// the start grow in equal steps.
func TestArc_GreatCircle(t *testing.T) {
	t.Parallel()

	a, b := geo.New(51.5, -0.1), geo.New(40.7, -74)
	pts, err := spherical.Arc(a, b, 11)
	require.NoError(t, err)
	total := spherical.Distance(a, b)
	for i, p := range pts {
		assert.InDelta(t, total*float64(i)/10, spherical.Distance(a, p), 1e-6)
	}
	assert.Equal(t, a, pts[0])
	assert.InDelta(t, b.Latitude, pts[10].Latitude, 1e-9)
	assert.InDelta(t, b.Longitude, pts[10].Longitude, 1e-9)
}

// TestArc_Antimeridian: the arc takes the short path across ±180°.
func TestArc_Antimeridian(t *testing.T) {
	t.Parallel()

	pts, err := spherical.Arc(geo.New(0, 170), geo.New(0, -170), 5)
	require.NoError(t, err)
	want := []float64{170, 175, 180, 185, 190}
	for i, p := range pts {
		assert.InDelta(t, want[i], p.Longitude, 1e-9, "point %d", i)
		assert.InDelta(t, 0, p.Latitude, 1e-9)
	}

	pts, err = spherical.Arc(geo.New(5, -175), geo.New(5, 175), 3)
	require.NoError(t, err)
	assert.Less(t, pts[1].Longitude, -175.0)
	assert.InDelta(t, -185, pts[2].Longitude, 1e-9)
}

// TestArc_Coincident returns n copies of the start point.
func TestArc_Coincident(t *testing.T) {
	t.Parallel()

	a := geo.New(12.5, 33)
	pts, err := spherical.Arc(a, a, 6)
	require.NoError(t, err)
	require.Len(t, pts, 6)
	for _, p := range pts {
		assert.Equal(t, a, p)
	}
}

func TestArc_TooFewPoints(t *testing.T) {
	t.Parallel()

	_, err := spherical.Arc(geo.New(0, 0), geo.New(1, 1), 1)
	require.ErrorIs(t, err, spherical.ErrTooFewPoints)
}

// TestExcess_ThinSliver: a face a few nanoradians tall still matches s2.
func TestExcess_ThinSliver(t *testing.T) {
	t.Parallel()

	a, b, c := geo.New(0, 0), geo.New(0, 60), geo.New(1e-7, 30)
	want := s2.PointArea(a.Point(), b.Point(), c.Point())
	got := spherical.Excess(a, b, c)
	require.Greater(t, want, 0.0)
	assert.InEpsilon(t, want, got, 1e-4)

	// Splitting at the centroid conserves area on the sliver too.
	n, err := spherical.Centroid(a, b, c)
	require.NoError(t, err)
	sum := spherical.Excess(n, a, b) + spherical.Excess(n, b, c) + spherical.Excess(n, c, a)
	assert.InEpsilon(t, got, sum, 1e-4)
}

// TestContainsStrict_ThinSliver: the centroid of a sliver is strictly inside,
// points just across the long edge or on a corner are not.
func TestContainsStrict_ThinSliver(t *testing.T) {
	t.Parallel()

	a, b, c := geo.New(0, 0), geo.New(0, 60), geo.New(1e-7, 30)
	ctr, err := spherical.Centroid(a, b, c)
	require.NoError(t, err)
	assert.True(t, spherical.ContainsStrict(ctr, a, b, c))
	assert.True(t, spherical.ContainsStrict(ctr, c, b, a), "winding")

	assert.False(t, spherical.ContainsStrict(geo.New(-1e-8, 30), a, b, c))
	assert.False(t, spherical.ContainsStrict(c, a, b, c))
	anti := geo.FromVector(geo.ToVector(ctr).Mul(-1))
	assert.False(t, spherical.ContainsStrict(anti, a, b, c))
}
