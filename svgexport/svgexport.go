package svgexport

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/geomesh/geo"
	"github.com/katalvlaran/geomesh/mesh"
	"github.com/katalvlaran/geomesh/spherical"
)

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err

	return n, err
}

// Write renders the faces of m visible under vp to w.
// Complexity: O(F·samples).
func Write(w io.Writer, m mesh.Mesh, vp geo.Viewport, opts ...Option) error {
	if err := vp.Validate(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	cfg := newConfig(opts...)
	seam, err := seamShift(vp)
	if err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(vp.Width, vp.Height)
	if cfg.background != "" {
		canvas.Rect(0, 0, vp.Width, vp.Height, "fill:"+cfg.background)
	}
	canvas.Gid("faces")
	for _, f := range mesh.VisibleFaces(m, vp) {
		xs, ys, err := outline(m, f, vp, seam, cfg.samples)
		if err != nil {
			return fmt.Errorf("Write: face %s: %w", f.ID, err)
		}
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;fill-opacity:%.2f;stroke:%s;stroke-width:%.2f",
			f.Color, cfg.opacity, cfg.stroke, cfg.strokeWidth))
	}
	canvas.Gend()
	if cfg.labels {
		labels(canvas, m, vp)
	}
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("Write: %w", ew.err)
	}

	return nil
}

// seamShift is the screen-space vector spanning one full world width.
func seamShift(vp geo.Viewport) (geo.ScreenPoint, error) {
	east, err := geo.Project(geo.Coordinate{Longitude: 180}, vp)
	if err != nil {
		return geo.ScreenPoint{}, err
	}
	west, err := geo.Project(geo.Coordinate{Longitude: -180}, vp)
	if err != nil {
		return geo.ScreenPoint{}, err
	}

	return east.Sub(west), nil
}

// outline samples the three edges of f and projects them, shifting each
// point by whole world widths to stay next to its predecessor.
func outline(m mesh.Mesh, f mesh.Face, vp geo.Viewport, seam geo.ScreenPoint, samples int) ([]int, []int, error) {
	corners, err := m.Corners(f)
	if err != nil {
		return nil, nil, err
	}
	n := 3 * (samples - 1)
	xs := make([]int, 0, n)
	ys := make([]int, 0, n)
	var prev geo.ScreenPoint
	for i := 0; i < 3; i++ {
		arc, err := spherical.Arc(corners[i], corners[(i+1)%3], samples)
		if err != nil {
			return nil, nil, err
		}
		for _, c := range arc[:len(arc)-1] {
			c.Longitude = geo.WrapLongitude(c.Longitude)
			if vp.Projection == geo.WebMercator {
				c = c.ClampMercator()
			}
			p, err := geo.Project(c, vp)
			if err != nil {
				return nil, nil, err
			}
			if len(xs) > 0 {
				p = nearest(p, prev, seam)
			}
			prev = p
			xs = append(xs, int(math.Round(p.X)))
			ys = append(ys, int(math.Round(p.Y)))
		}
	}

	return xs, ys, nil
}

// nearest returns whichever of p, p+seam, p-seam lies closest to prev.
func nearest(p, prev, seam geo.ScreenPoint) geo.ScreenPoint {
	best := p
	bestD := p.Sub(prev).Norm()
	for _, q := range []geo.ScreenPoint{p.Add(seam), p.Sub(seam)} {
		if d := q.Sub(prev).Norm(); d < bestD {
			best, bestD = q, d
		}
	}

	return best
}

func labels(canvas *svg.SVG, m mesh.Mesh, vp geo.Viewport) {
	canvas.Gid("labels")
	for _, f := range mesh.VisibleFaces(m, vp) {
		corners, err := m.Corners(f)
		if err != nil {
			continue
		}
		c, err := spherical.Centroid(corners[0], corners[1], corners[2])
		if err != nil {
			continue
		}
		if vp.Projection == geo.WebMercator {
			c = c.ClampMercator()
		}
		p, err := geo.Project(c, vp)
		if err != nil {
			continue
		}
		canvas.Text(int(math.Round(p.X)), int(math.Round(p.Y)), f.ID,
			"font-size:8px;font-family:sans-serif;text-anchor:middle;fill:#000")
	}
	canvas.Gend()
}
