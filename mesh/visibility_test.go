package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geomesh/geo"
	"github.com/katalvlaran/geomesh/mesh"
	"github.com/katalvlaran/geomesh/spherical"
)

func TestIsVisible_Viewports(t *testing.T) {
	t.Parallel()

	m := mesh.Generate()
	vp := geo.Viewport{Zoom: 4, Center: geo.New(20, 10), Width: 1024, Height: 768}

	var host mesh.Face
	for _, f := range m.Faces {
		c, err := m.Corners(f)
		require.NoError(t, err)
		if spherical.Contains(vp.Center, c[0], c[1], c[2]) {
			host = f
			break
		}
	}
	require.NotEmpty(t, host.ID)
	assert.True(t, mesh.IsVisible(host, m, vp))

	// South cap faces sit well below the screen.
	for _, id := range []string{"f15", "f16", "f17", "f18", "f19"} {
		f, ok := m.Face(id)
		require.True(t, ok)
		assert.False(t, mesh.IsVisible(f, m, vp), id)
	}

	vis := mesh.VisibleFaces(m, vp)
	assert.NotEmpty(t, vis)
	assert.Less(t, len(vis), len(m.Faces))

	// Whole world at zoom 0 shows every face.
	world := geo.Viewport{Zoom: 0, Center: geo.New(0, 0), Width: 256, Height: 256}
	assert.Len(t, mesh.VisibleFaces(m, world), len(m.Faces))
}

func TestIsVisible_Invalid(t *testing.T) {
	t.Parallel()

	m := mesh.Generate()
	assert.False(t, mesh.IsVisible(m.Faces[0], m, geo.Viewport{}))

	bad := m.Faces[0]
	bad.Vertices[0] = 99
	assert.False(t, mesh.IsVisible(bad, m, geo.Viewport{Zoom: 1, Width: 10, Height: 10}))
}
