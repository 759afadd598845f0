package geo_test

import (
	"math"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geomesh/geo"
)

// TestToVector_RoundTrip sweeps a lat/lon grid and checks the unit-sphere
// mapping is inverted to within 1e-9 degrees.
func TestToVector_RoundTrip(t *testing.T) {
	t.Parallel()

	for lat := -89.5; lat <= 89.5; lat += 7.25 {
		for lon := -179.75; lon <= 180; lon += 11.5 {
			c := geo.New(lat, lon)
			v := geo.ToVector(c)
			require.InDelta(t, 1.0, v.Norm(), 1e-12)

			back := geo.FromVector(v)
			require.InDelta(t, lat, back.Latitude, 1e-9, "lat for %v", c)
			require.InDelta(t, lon, back.Longitude, 1e-9, "lon for %v", c)
		}
	}
}

// TestFromVector_NearPole checks latitude precision very close to the poles.
func TestFromVector_NearPole(t *testing.T) {
	t.Parallel()

	for _, lat := range []float64{89.9999999, -89.9999999, 90, -90} {
		back := geo.FromVector(geo.ToVector(geo.New(lat, 45)))
		assert.InDelta(t, lat, back.Latitude, 1e-9)
	}
}

// TestCoordinate_S2Interop compares the vector mapping with github.com/golang/geo/s2.
func TestCoordinate_S2Interop(t *testing.T) {
	t.Parallel()

	c := geo.New(48.8566, 2.3522)
	want := s2.PointFromLatLng(s2.LatLngFromDegrees(c.Latitude, c.Longitude))
	got := c.Point()
	assert.True(t, want.ApproxEqual(got))

	back := geo.FromLatLng(c.LatLng())
	assert.InDelta(t, c.Latitude, back.Latitude, 1e-12)
	assert.InDelta(t, c.Longitude, back.Longitude, 1e-12)
}

func TestCoordinate_Validate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		c    geo.Coordinate
		want error
	}{
		{"origin", geo.New(0, 0), nil},
		{"north pole", geo.New(90, 180), nil},
		{"lat too big", geo.New(90.1, 0), geo.ErrLatitudeRange},
		{"lat NaN", geo.New(math.NaN(), 0), geo.ErrLatitudeRange},
		{"lon too small", geo.New(0, -180.5), geo.ErrLongitudeRange},
		{"lon NaN", geo.New(0, math.NaN()), geo.ErrLongitudeRange},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.c.Validate()
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWrapLongitude_Ranges(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 180.0, geo.WrapLongitude(180))
	assert.Equal(t, -180.0, geo.WrapLongitude(-180))
	assert.InDelta(t, -170.0, geo.WrapLongitude(190), 1e-12)
	assert.InDelta(t, 170.0, geo.WrapLongitude(-190), 1e-12)
	assert.InDelta(t, 10.0, geo.WrapLongitude(730), 1e-12)
}
