package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Sentinel errors for projections.
var (
	// ErrProjectionSingularity indicates a latitude at or beyond ±90° fed to
	// the Mercator projection, or a non-finite intermediate result.
	ErrProjectionSingularity = errors.New("geo: projection singularity")

	// ErrInvalidViewport indicates a viewport with negative zoom,
	// non-positive size or non-finite fields.
	ErrInvalidViewport = errors.New("geo: invalid viewport")
)

const (
	// TileSize is the pixel width of the world at zoom 0.
	TileSize = 256

	// MaxMercatorLatitude is the latitude at which the Web-Mercator world
	// becomes square; maps conventionally clamp to it.
	MaxMercatorLatitude = 85.05112878
)

// Projection selects the screen projection of a Viewport.
type Projection int

const (
	// WebMercator is the conformal cylindrical projection used by slippy maps.
	WebMercator Projection = iota

	// Equirectangular maps latitude and longitude linearly (plate carrée).
	Equirectangular
)

// String returns a readable name for logs and errors.
func (p Projection) String() string {
	switch p {
	case WebMercator:
		return "WebMercator"
	case Equirectangular:
		return "Equirectangular"
	default:
		return "Unknown"
	}
}

// ScreenPoint is a pixel position, origin top-left, y down.
type ScreenPoint = r2.Point

// Viewport describes the map view supplied by the UI.
type Viewport struct {
	Zoom       float64    // ≥ 0; world width is TileSize·2^Zoom
	Center     Coordinate // geographic position at the viewport centre
	Width      int        // pixels, > 0
	Height     int        // pixels, > 0
	Rotation   float64    // degrees clockwise about the centre
	Projection Projection // defaults to WebMercator
}

// Validate reports whether vp can be used for projection.
func (vp Viewport) Validate() error {
	if math.IsNaN(vp.Zoom) || math.IsInf(vp.Zoom, 0) || vp.Zoom < 0 {
		return fmt.Errorf("zoom %v: %w", vp.Zoom, ErrInvalidViewport)
	}
	if vp.Width <= 0 || vp.Height <= 0 {
		return fmt.Errorf("size %dx%d: %w", vp.Width, vp.Height, ErrInvalidViewport)
	}
	if math.IsNaN(vp.Rotation) || math.IsInf(vp.Rotation, 0) {
		return fmt.Errorf("rotation %v: %w", vp.Rotation, ErrInvalidViewport)
	}
	if vp.Projection != WebMercator && vp.Projection != Equirectangular {
		return fmt.Errorf("projection %d: %w", vp.Projection, ErrInvalidViewport)
	}
	if err := vp.Center.Validate(); err != nil {
		return fmt.Errorf("center: %v: %w", err, ErrInvalidViewport)
	}

	return nil
}

// Scale returns the world width in pixels.
func (vp Viewport) Scale() float64 {
	return TileSize * math.Exp2(vp.Zoom)
}

// Project maps c to screen space under vp.
// Complexity: O(1).
func Project(c Coordinate, vp Viewport) (ScreenPoint, error) {
	if err := vp.Validate(); err != nil {
		return ScreenPoint{}, fmt.Errorf("Project: %w", err)
	}
	w, err := toWorld(c, vp.Projection)
	if err != nil {
		return ScreenPoint{}, fmt.Errorf("Project: %w", err)
	}
	ctr, err := toWorld(vp.Center, vp.Projection)
	if err != nil {
		return ScreenPoint{}, fmt.Errorf("Project: center: %w", err)
	}
	scale := vp.Scale()
	d := rotate(w.Sub(ctr).Mul(scale), vp.Rotation)
	p := ScreenPoint{X: d.X + float64(vp.Width)/2, Y: d.Y + float64(vp.Height)/2}
	if !finite(p.X) || !finite(p.Y) {
		return ScreenPoint{}, fmt.Errorf("Project: %v: %w", c, ErrProjectionSingularity)
	}

	return p, nil
}

// Unproject maps a screen point back to a geographic coordinate under vp.
// Longitudes past the world edge are wrapped into [-180,180].
// Complexity: O(1).
func Unproject(p ScreenPoint, vp Viewport) (Coordinate, error) {
	if err := vp.Validate(); err != nil {
		return Coordinate{}, fmt.Errorf("Unproject: %w", err)
	}
	if !finite(p.X) || !finite(p.Y) {
		return Coordinate{}, fmt.Errorf("Unproject: %v: %w", p, ErrProjectionSingularity)
	}
	ctr, err := toWorld(vp.Center, vp.Projection)
	if err != nil {
		return Coordinate{}, fmt.Errorf("Unproject: center: %w", err)
	}
	d := rotate(ScreenPoint{X: p.X - float64(vp.Width)/2, Y: p.Y - float64(vp.Height)/2}, -vp.Rotation)
	w := ctr.Add(d.Mul(1 / vp.Scale()))
	c := fromWorld(w, vp.Projection)
	if !finite(c.Latitude) || !finite(c.Longitude) {
		return Coordinate{}, fmt.Errorf("Unproject: %v: %w", p, ErrProjectionSingularity)
	}

	return c, nil
}

// toWorld maps c into normalized world coordinates ([0,1] horizontally).
func toWorld(c Coordinate, proj Projection) (r2.Point, error) {
	if proj == WebMercator && (c.Latitude >= 90 || c.Latitude <= -90) {
		return r2.Point{}, fmt.Errorf("latitude %v: %w", c.Latitude, ErrProjectionSingularity)
	}
	if err := c.Validate(); err != nil {
		return r2.Point{}, err
	}
	x := (c.Longitude + 180) / 360
	switch proj {
	case Equirectangular:
		return r2.Point{X: x, Y: (90 - c.Latitude) / 360}, nil
	default:
		phi := c.Latitude * math.Pi / 180
		mercN := math.Log(math.Tan(math.Pi/4 + phi/2))
		y := 0.5 - mercN/(2*math.Pi)
		if !finite(y) {
			return r2.Point{}, fmt.Errorf("latitude %v: %w", c.Latitude, ErrProjectionSingularity)
		}

		return r2.Point{X: x, Y: y}, nil
	}
}

// fromWorld is the inverse of toWorld.
func fromWorld(w r2.Point, proj Projection) Coordinate {
	lon := WrapLongitude(w.X*360 - 180)
	switch proj {
	case Equirectangular:
		return Coordinate{Latitude: ClampLatitude(90-w.Y*360, 90), Longitude: lon}
	default:
		mercN := (0.5 - w.Y) * 2 * math.Pi
		lat := 2*math.Atan(math.Exp(mercN)) - math.Pi/2

		return Coordinate{Latitude: lat * 180 / math.Pi, Longitude: lon}
	}
}

// rotate turns p by deg degrees clockwise in a y-down frame.
func rotate(p r2.Point, deg float64) r2.Point {
	if deg == 0 {
		return p
	}
	s, c := math.Sincos(deg * math.Pi / 180)

	return r2.Point{X: p.X*c - p.Y*s, Y: p.X*s + p.Y*c}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
