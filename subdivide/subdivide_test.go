package subdivide_test

import (
	"math"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geomesh/geo"
	"github.com/katalvlaran/geomesh/mesh"
	"github.com/katalvlaran/geomesh/spherical"
	"github.com/katalvlaran/geomesh/subdivide"
)

func area(t *testing.T, m mesh.Mesh, f mesh.Face) float64 {
	t.Helper()
	c, err := m.Corners(f)
	require.NoError(t, err)

	return spherical.TriangleArea(c[0], c[1], c[2])
}

// TestSplit_Centroid checks the delta of a centroid split on a seed face.
func TestSplit_Centroid(t *testing.T) {
	t.Parallel()

	m := mesh.Generate()
	before := m.Clone()

	d, err := subdivide.Split(m, "f6", nil)
	require.NoError(t, err)
	require.True(t, m.Equal(before), "input mesh must not change")

	assert.Equal(t, "f6", d.RemovedParentID)
	assert.Equal(t, len(m.Vertices), d.VertexBase)
	assert.False(t, d.UsedSplitPoint)
	require.Len(t, d.NewVertices, 1)
	require.Len(t, d.NewFaces, subdivide.ChildCount)
	assert.InDelta(t, 1.0, geo.ToVector(d.NewVertices[0]).Norm(), 1e-9)

	parent, _ := m.Face("f6")
	for i, f := range d.NewFaces {
		assert.Equal(t, mesh.ChildID("f6", i), f.ID)
		assert.Equal(t, 1, f.Level)
		assert.Equal(t, 0, f.Clicks)
		assert.Equal(t, "f6", f.ParentID)
		assert.Equal(t, mesh.ColorFor(1, 0), f.Color)
		assert.Equal(t, d.VertexBase, f.Vertices[0])
		assert.Equal(t, parent.Vertices[i], f.Vertices[1])
		assert.Equal(t, parent.Vertices[(i+1)%3], f.Vertices[2])
	}
}

// TestApply_AreaConservation: the children tile the parent.
func TestApply_AreaConservation(t *testing.T) {
	t.Parallel()

	m := mesh.Generate()
	parent, _ := m.Face("f3")
	parentArea := area(t, m, parent)

	out, removed, err := subdivide.Face(m, "f3", nil)
	require.NoError(t, err)
	assert.Equal(t, "f3", removed)
	require.NoError(t, out.Validate())
	assert.Len(t, out.Faces, 22)
	assert.Len(t, out.Vertices, 13)
	assert.False(t, out.HasFace("f3"))
	assert.Len(t, m.Faces, 20, "input keeps its faces")

	var sum float64
	for i := 0; i < subdivide.ChildCount; i++ {
		f, ok := out.Face(mesh.ChildID("f3", i))
		require.True(t, ok)
		sum += area(t, out, f)
	}
	assert.InEpsilon(t, parentArea, sum, 0.05)
}

// TestSplitPoint_Accepted uses an interior click location as the new vertex.
func TestSplitPoint_Accepted(t *testing.T) {
	t.Parallel()

	m := mesh.Generate()
	f, _ := m.Face("f0")
	c, err := m.Corners(f)
	require.NoError(t, err)
	ctr, err := spherical.Centroid(c[0], c[1], c[2])
	require.NoError(t, err)
	// Nudge toward the second corner, still inside.
	pt := geo.New((ctr.Latitude*3+c[1].Latitude)/4, (ctr.Longitude*3+c[1].Longitude)/4)
	require.True(t, spherical.ContainsStrict(pt, c[0], c[1], c[2]))

	d, err := subdivide.Split(m, "f0", &pt)
	require.NoError(t, err)
	assert.True(t, d.UsedSplitPoint)
	assert.Equal(t, pt, d.NewVertices[0])
}

// TestSplitPoint_Rejected falls back to the centroid for outside or invalid points.
func TestSplitPoint_Rejected(t *testing.T) {
	t.Parallel()

	m := mesh.Generate()
	f, _ := m.Face("f0")
	c, _ := m.Corners(f)
	ctr, err := spherical.Centroid(c[0], c[1], c[2])
	require.NoError(t, err)

	for _, pt := range []geo.Coordinate{geo.New(-60, 0), c[1], geo.New(200, 0)} {
		pt := pt
		d, err := subdivide.Split(m, "f0", &pt)
		require.NoError(t, err)
		assert.False(t, d.UsedSplitPoint, "%v", pt)
		assert.InDelta(t, ctr.Latitude, d.NewVertices[0].Latitude, 1e-12)
		assert.InDelta(t, ctr.Longitude, d.NewVertices[0].Longitude, 1e-12)
	}
}

// TestSplit_ToMaxLevel follows one lineage to the level cap.
func TestSplit_ToMaxLevel(t *testing.T) {
	t.Parallel()

	m := mesh.Generate()
	id := "f9"
	for level := 0; level < mesh.MaxLevel; level++ {
		var err error
		m, _, err = subdivide.Face(m, id, nil)
		require.NoError(t, err, "level %d", level)
		id = mesh.ChildID(id, level%3)
	}
	require.NoError(t, m.Validate())
	f, ok := m.Face(id)
	require.True(t, ok)
	assert.Equal(t, mesh.MaxLevel, f.Level)
	assert.Len(t, m.Faces, 20+2*mesh.MaxLevel)
	assert.Len(t, m.Vertices, 12+mesh.MaxLevel)
	for _, v := range m.Vertices {
		assert.InDelta(t, 1.0, geo.ToVector(v).Norm(), 1e-9)
	}

	_, err := subdivide.Split(m, id, nil)
	require.ErrorIs(t, err, subdivide.ErrNotSubdividable)
	out, removed, err := subdivide.Face(m, id, nil)
	require.ErrorIs(t, err, subdivide.ErrNotSubdividable)
	assert.Empty(t, removed)
	assert.True(t, out.Equal(m))
}

func TestFace_Unknown(t *testing.T) {
	t.Parallel()

	m := mesh.Generate()
	_, err := subdivide.Split(m, "nope", nil)
	require.ErrorIs(t, err, subdivide.ErrFaceNotFound)
	require.ErrorIs(t, err, mesh.ErrFaceNotFound)

	out, removed, err := subdivide.Face(m, "nope", nil)
	require.NoError(t, err)
	assert.Empty(t, removed)
	assert.True(t, out.Equal(m))
}

func TestApply_Stale(t *testing.T) {
	t.Parallel()

	m := mesh.Generate()
	d1, err := subdivide.Split(m, "f1", nil)
	require.NoError(t, err)
	d2, err := subdivide.Split(m, "f2", nil)
	require.NoError(t, err)

	m2, err := subdivide.Apply(m, d1)
	require.NoError(t, err)
	_, err = subdivide.Apply(m2, d2)
	require.ErrorIs(t, err, subdivide.ErrStaleDelta)

	gone := d1
	gone.VertexBase = len(m2.Vertices)
	_, err = subdivide.Apply(m2, gone)
	require.ErrorIs(t, err, subdivide.ErrFaceNotFound)
}

// TestSplit_ThinLineageConservesArea always follows child 1, which keeps the
// parent's far edge and shrinks only the height, so faces get thinner at
// every level. Area must still match s2 and the children must tile the
// parent all the way down.
func TestSplit_ThinLineageConservesArea(t *testing.T) {
	t.Parallel()

	m := mesh.Generate()
	id := "f9"
	for level := 0; level < mesh.MaxLevel; level++ {
		parent, ok := m.Face(id)
		require.True(t, ok, "level %d", level)
		c, err := m.Corners(parent)
		require.NoError(t, err)

		// 1) Excess agrees with s2 on the current face.
		want := s2.PointArea(c[0].Point(), c[1].Point(), c[2].Point())
		got := spherical.Excess(c[0], c[1], c[2])
		require.Greater(t, want, 0.0, "level %d", level)
		assert.InEpsilon(t, want, got, 1e-4, "level %d: excess vs s2", level)

		// 2) The centroid stays a strictly interior split point.
		ctr, err := spherical.Centroid(c[0], c[1], c[2])
		require.NoError(t, err)
		assert.True(t, spherical.ContainsStrict(ctr, c[0], c[1], c[2]), "level %d: centroid", level)

		// 3) Children tile the parent.
		m, _, err = subdivide.Face(m, id, &ctr)
		require.NoError(t, err, "level %d", level)
		var sum float64
		for i := 0; i < subdivide.ChildCount; i++ {
			f, ok := m.Face(mesh.ChildID(id, i))
			require.True(t, ok)
			fc, err := m.Corners(f)
			require.NoError(t, err)
			sum += spherical.Excess(fc[0], fc[1], fc[2])
		}
		assert.InEpsilon(t, got, sum, 1e-4, "level %d: children vs parent", level)

		id = mesh.ChildID(id, 1)
	}

	// The whole mesh still covers the sphere.
	st := mesh.ComputeStats(m)
	full := 4 * math.Pi * spherical.EarthRadiusKm * spherical.EarthRadiusKm
	assert.InEpsilon(t, full, st.AreaKm2, 1e-6)
}
