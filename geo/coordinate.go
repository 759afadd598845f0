package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Sentinel errors for coordinate validation.
var (
	// ErrLatitudeRange indicates a latitude outside [-90,90] or NaN.
	ErrLatitudeRange = errors.New("geo: latitude out of range")

	// ErrLongitudeRange indicates a longitude outside [-180,180] or NaN.
	ErrLongitudeRange = errors.New("geo: longitude out of range")
)

// Coordinate is a geographic position in degrees.
type Coordinate struct {
	// Latitude in degrees, [-90,90].
	Latitude float64 `json:"latitude"`

	// Longitude in degrees, [-180,180].
	Longitude float64 `json:"longitude"`
}

// New returns the Coordinate (lat, lon).
func New(lat, lon float64) Coordinate {
	return Coordinate{Latitude: lat, Longitude: lon}
}

// String renders the coordinate as "(lat, lon)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.Latitude, c.Longitude)
}

// Validate reports whether c lies inside the geographic domain.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude %v: %w", c.Latitude, ErrLatitudeRange)
	}
	if math.IsNaN(c.Longitude) || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude %v: %w", c.Longitude, ErrLongitudeRange)
	}

	return nil
}

// LatLng converts c to an s2.LatLng.
func (c Coordinate) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(c.Latitude, c.Longitude)
}

// Point converts c to an s2.Point on the unit sphere.
func (c Coordinate) Point() s2.Point {
	return s2.Point{Vector: ToVector(c)}
}

// FromLatLng converts an s2.LatLng to a Coordinate.
func FromLatLng(ll s2.LatLng) Coordinate {
	return Coordinate{Latitude: ll.Lat.Degrees(), Longitude: ll.Lng.Degrees()}
}

// ToVector maps c onto the unit sphere.
// Complexity: O(1).
func ToVector(c Coordinate) r3.Vector {
	lat := (s1.Angle(c.Latitude) * s1.Degree).Radians()
	lon := (s1.Angle(c.Longitude) * s1.Degree).Radians()
	cosLat := math.Cos(lat)

	return r3.Vector{
		X: cosLat * math.Cos(lon),
		Y: cosLat * math.Sin(lon),
		Z: math.Sin(lat),
	}
}

// FromVector is the inverse of ToVector: longitude = atan2(y,x) and
// latitude = asin(z), the latter evaluated as atan2(z, hypot(x,y)) so the
// round trip stays exact near the poles. Non-unit inputs are read along
// their direction; the zero vector maps to (0,0).
// Complexity: O(1).
func FromVector(v r3.Vector) Coordinate {
	lat := math.Atan2(v.Z, math.Hypot(v.X, v.Y))
	lon := math.Atan2(v.Y, v.X)

	return Coordinate{
		Latitude:  (s1.Angle(lat) * s1.Radian).Degrees(),
		Longitude: (s1.Angle(lon) * s1.Radian).Degrees(),
	}
}

// WrapLongitude maps lon into [-180,180]. Values already in range,
// including ±180, are returned unchanged.
func WrapLongitude(lon float64) float64 {
	if lon >= -180 && lon <= 180 {
		return lon
	}
	w := math.Mod(lon+180, 360)
	if w < 0 {
		w += 360
	}

	return w - 180
}

// ClampLatitude restricts lat to [-limit, limit].
func ClampLatitude(lat, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, lat))
}

// ClampMercator returns c with its latitude clamped to the Web-Mercator
// limit, so it can be projected without ErrProjectionSingularity.
func (c Coordinate) ClampMercator() Coordinate {
	return Coordinate{Latitude: ClampLatitude(c.Latitude, MaxMercatorLatitude), Longitude: c.Longitude}
}
