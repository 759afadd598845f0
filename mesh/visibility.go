package mesh

import (
	"math"

	"github.com/katalvlaran/geomesh/geo"
	"github.com/katalvlaran/geomesh/spherical"
)

// IsVisible reports whether face f of m overlaps the viewport. Corners are
// clamped to the Web-Mercator limit before projecting, so polar faces are
// tested against the map edge. A face that contains the viewport centre is
// always visible. An invalid viewport or face is never visible.
// Complexity: O(1).
func IsVisible(f Face, m Mesh, vp geo.Viewport) bool {
	corners, err := m.Corners(f)
	if err != nil || vp.Validate() != nil {
		return false
	}
	if spherical.Contains(vp.Center, corners[0], corners[1], corners[2]) {
		return true
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		if vp.Projection == geo.WebMercator {
			c = c.ClampMercator()
		}
		p, err := geo.Project(c, vp)
		if err != nil {
			return false
		}
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	return maxX >= 0 && minX <= float64(vp.Width) && maxY >= 0 && minY <= float64(vp.Height)
}

// VisibleFaces returns the active faces of m that overlap vp, in mesh order.
// Complexity: O(F).
func VisibleFaces(m Mesh, vp geo.Viewport) []Face {
	out := make([]Face, 0, len(m.Faces))
	for _, f := range m.Faces {
		if IsVisible(f, m, vp) {
			out = append(out, f)
		}
	}

	return out
}
