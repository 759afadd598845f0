package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geomesh/geo"
)

func viewport(proj geo.Projection) geo.Viewport {
	return geo.Viewport{
		Zoom:       3,
		Center:     geo.New(20, 10),
		Width:      1024,
		Height:     768,
		Projection: proj,
	}
}

// TestProject_Center maps the viewport centre onto the middle of the screen.
func TestProject_Center(t *testing.T) {
	t.Parallel()

	for _, proj := range []geo.Projection{geo.WebMercator, geo.Equirectangular} {
		vp := viewport(proj)
		vp.Rotation = 33
		p, err := geo.Project(vp.Center, vp)
		require.NoError(t, err, proj.String())
		assert.InDelta(t, 512, p.X, 1e-9)
		assert.InDelta(t, 384, p.Y, 1e-9)
	}
}

// TestProject_RoundTrip checks Unproject∘Project is the identity inside ±85°.
func TestProject_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, proj := range []geo.Projection{geo.WebMercator, geo.Equirectangular} {
		for _, rot := range []float64{0, 17.5, -90} {
			vp := viewport(proj)
			vp.Rotation = rot
			for lat := -84.5; lat < 85; lat += 6.5 {
				for lon := -179.0; lon <= 179; lon += 13 {
					c := geo.New(lat, lon)
					p, err := geo.Project(c, vp)
					require.NoError(t, err)
					back, err := geo.Unproject(p, vp)
					require.NoError(t, err)
					require.InDelta(t, lat, back.Latitude, 1e-7, "%s rot=%v %v", proj, rot, c)
					require.InDelta(t, lon, back.Longitude, 1e-7, "%s rot=%v %v", proj, rot, c)
				}
			}
		}
	}
}

// TestProject_MercatorFormula checks the zoom-0 world layout against the closed form.
func TestProject_MercatorFormula(t *testing.T) {
	t.Parallel()

	vp := geo.Viewport{Zoom: 0, Center: geo.New(0, 0), Width: 256, Height: 256}
	p, err := geo.Project(geo.New(0, -180), vp)
	require.NoError(t, err)
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 128, p.Y, 1e-9)

	p, err = geo.Project(geo.New(geo.MaxMercatorLatitude, 180), vp)
	require.NoError(t, err)
	assert.InDelta(t, 256, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-4)

	// Each zoom level doubles the pixel distance.
	vp2 := vp
	vp2.Zoom = 1
	a, err := geo.Project(geo.New(10, 20), vp)
	require.NoError(t, err)
	b, err := geo.Project(geo.New(10, 20), vp2)
	require.NoError(t, err)
	assert.InDelta(t, 2*(a.X-128), b.X-128, 1e-9)
	assert.InDelta(t, 2*(a.Y-128), b.Y-128, 1e-9)
}

// TestProject_Singularity rejects the Mercator poles instead of returning ±Inf.
func TestProject_Singularity(t *testing.T) {
	t.Parallel()

	vp := viewport(geo.WebMercator)
	for _, lat := range []float64{90, -90} {
		_, err := geo.Project(geo.New(lat, 0), vp)
		require.ErrorIs(t, err, geo.ErrProjectionSingularity)
	}

	vp.Center = geo.New(90, 0)
	_, err := geo.Project(geo.New(0, 0), vp)
	require.ErrorIs(t, err, geo.ErrProjectionSingularity)

	// Equirectangular handles the poles.
	_, err = geo.Project(geo.New(90, 0), viewport(geo.Equirectangular))
	require.NoError(t, err)

	// Clamping first keeps Mercator usable.
	p, err := geo.Project(geo.New(90, 0).ClampMercator(), viewport(geo.WebMercator))
	require.NoError(t, err)
	assert.False(t, math.IsInf(p.Y, 0))

	_, err = geo.Unproject(geo.ScreenPoint{X: math.Inf(1)}, viewport(geo.WebMercator))
	require.ErrorIs(t, err, geo.ErrProjectionSingularity)
}

func TestViewport_Invalid(t *testing.T) {
	t.Parallel()

	bad := []geo.Viewport{
		{Zoom: -1, Width: 10, Height: 10},
		{Zoom: 1, Width: 0, Height: 10},
		{Zoom: 1, Width: 10, Height: -3},
		{Zoom: math.NaN(), Width: 10, Height: 10},
		{Zoom: 1, Width: 10, Height: 10, Rotation: math.Inf(1)},
		{Zoom: 1, Width: 10, Height: 10, Projection: geo.Projection(9)},
		{Zoom: 1, Width: 10, Height: 10, Center: geo.New(100, 0)},
	}
	for i, vp := range bad {
		_, err := geo.Project(geo.New(0, 0), vp)
		require.ErrorIs(t, err, geo.ErrInvalidViewport, "case %d", i)
		_, err = geo.Unproject(geo.ScreenPoint{}, vp)
		require.ErrorIs(t, err, geo.ErrInvalidViewport, "case %d", i)
	}
}
