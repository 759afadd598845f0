package mesh

import "github.com/katalvlaran/geomesh/spherical"

// Stats aggregates a mesh. It is derived data: recompute it after every
// mutation rather than storing it.
type Stats struct {
	TotalVertices int         `json:"total_vertices"`
	TotalFaces    int         `json:"total_faces"`
	MaxLevel      int         `json:"max_level"`
	TotalClicks   int         `json:"total_clicks"`
	Exhausted     int         `json:"exhausted"`
	CountsByLevel map[int]int `json:"counts_by_level"`
	AreaKm2       float64     `json:"area_km2"`
}

// ComputeStats walks m once and returns its aggregate counts. Faces with
// invalid indices are counted but contribute no area.
// Complexity: O(F).
func ComputeStats(m Mesh) Stats {
	st := Stats{
		TotalVertices: len(m.Vertices),
		TotalFaces:    len(m.Faces),
		CountsByLevel: make(map[int]int),
	}
	for _, f := range m.Faces {
		st.CountsByLevel[f.Level]++
		if f.Level > st.MaxLevel {
			st.MaxLevel = f.Level
		}
		st.TotalClicks += f.Clicks
		if f.Exhausted() {
			st.Exhausted++
		}
		if c, err := m.Corners(f); err == nil {
			st.AreaKm2 += spherical.TriangleArea(c[0], c[1], c[2])
		}
	}

	return st
}
