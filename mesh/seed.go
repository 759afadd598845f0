// SPDX-License-Identifier: MIT
// Package: geomesh/mesh
//
// seed.go — the level-0 seed lattices and Generate.
//
// Contract:
//   • Both lattices have exactly SeedFaceCount (20) faces, ids f0..f19.
//   • Icosahedron (default) is closed; PolarBand leaves the polar caps open.
//   • Datasets are built once at init and never mutated; Generate copies.
//   • Lattices are never mixed within one mesh.
//
// Complexity:
//   • Generate: O(1) time and space (fixed lattice size).

package mesh

import (
	"math"

	"github.com/katalvlaran/geomesh/geo"
)

// Lattice enumerates the seed lattices.
type Lattice int

const (
	// Icosahedron: north pole, two rings of five at ±atan(1/2), south pole.
	// 12 vertices, 20 faces, closed.
	Icosahedron Lattice = iota

	// PolarBand: rings of five at +66.5°, the equator (offset 36°) and
	// -66.5°. 15 vertices, 20 faces; the polar caps stay open.
	PolarBand
)

// String provides a readable identifier for logs and errors.
func (l Lattice) String() string {
	switch l {
	case Icosahedron:
		return "Icosahedron"
	case PolarBand:
		return "PolarBand"
	default:
		return "Unknown"
	}
}

// PolarCircleLatitude is the ring latitude of the PolarBand lattice.
const PolarCircleLatitude = 66.5

// latticeSet is the canonical vertex/face data of one lattice.
type latticeSet struct {
	vertices []geo.Coordinate
	faces    [][3]int
}

// latticeSets holds the immutable seed datasets, built once at init.
var latticeSets = map[Lattice]latticeSet{
	Icosahedron: icosahedron(),
	PolarBand:   polarBand(),
}

// icosahedron lays out the 12 vertices as
//
//	0          north pole
//	1..5       upper ring, lon 0,72,..,288 at +atan(1/2)
//	6..10      lower ring, lon 36,108,..,324 at -atan(1/2)
//	11         south pole
//
// and emits faces as north cap, two middle strips, south cap.
func icosahedron() latticeSet {
	ringLat := math.Atan(0.5) * 180 / math.Pi // ≈ 26.565°, ring latitude of a pole-up icosahedron

	// 1) Vertices: pole, upper ring, lower ring (offset half a step), pole.
	vs := make([]geo.Coordinate, 0, 12)
	vs = append(vs, geo.New(90, 0))
	for i := 0; i < 5; i++ {
		vs = append(vs, geo.New(ringLat, geo.WrapLongitude(72*float64(i))))
	}
	for i := 0; i < 5; i++ {
		vs = append(vs, geo.New(-ringLat, geo.WrapLongitude(36+72*float64(i))))
	}
	vs = append(vs, geo.New(-90, 0))

	up := func(i int) int { return 1 + i%5 } // upper ring index, wraps after 5
	lo := func(i int) int { return 6 + i%5 } // lower ring index, wraps after 5

	// 2) North cap: fan around vertex 0.
	fs := make([][3]int, 0, SeedFaceCount)
	for i := 0; i < 5; i++ {
		fs = append(fs, [3]int{0, up(i), up(i + 1)})
	}

	// 3) Middle strip: one up-pointing and one down-pointing face per step.
	for i := 0; i < 5; i++ {
		fs = append(fs, [3]int{up(i), lo(i), up(i + 1)})
		fs = append(fs, [3]int{up(i + 1), lo(i), lo(i + 1)})
	}

	// 4) South cap: fan around vertex 11, reversed to keep the winding.
	for i := 0; i < 5; i++ {
		fs = append(fs, [3]int{11, lo(i + 1), lo(i)})
	}

	return latticeSet{vertices: vs, faces: fs}
}

// polarBand lays out 15 vertices as
//
//	0..4    northern ring, lon 0,72,..,288 at +66.5°
//	5..9    equator, lon 36,108,..,324
//	10..14  southern ring, lon 0,72,..,288 at -66.5°
//
// and emits the ten northern band faces followed by the ten southern ones.
func polarBand() latticeSet {
	vs := make([]geo.Coordinate, 0, 15)
	for i := 0; i < 5; i++ {
		vs = append(vs, geo.New(PolarCircleLatitude, geo.WrapLongitude(72*float64(i))))
	}
	for i := 0; i < 5; i++ {
		vs = append(vs, geo.New(0, geo.WrapLongitude(36+72*float64(i))))
	}
	for i := 0; i < 5; i++ {
		vs = append(vs, geo.New(-PolarCircleLatitude, geo.WrapLongitude(72*float64(i))))
	}

	n := func(i int) int { return i % 5 }
	e := func(i int) int { return 5 + i%5 }
	s := func(i int) int { return 10 + i%5 }
	fs := make([][3]int, 0, SeedFaceCount)
	for i := 0; i < 5; i++ {
		fs = append(fs, [3]int{n(i), e(i), n(i + 1)})
		fs = append(fs, [3]int{n(i + 1), e(i), e(i + 1)})
	}
	for i := 0; i < 5; i++ {
		fs = append(fs, [3]int{e(i), s(i + 1), s(i)})
		fs = append(fs, [3]int{e(i), e(i + 1), s(i + 1)})
	}

	return latticeSet{vertices: vs, faces: fs}
}

// Generate returns a fresh level-0 seed mesh: 20 faces with zero clicks
// and the unclicked level-0 color. The default lattice is Icosahedron.
// The returned mesh shares no memory with any other mesh.
// Complexity: O(1) (fixed lattice size).
func Generate(opts ...Option) Mesh {
	cfg := newSeedConfig(opts...)
	set := latticeSets[cfg.lattice] // immutable dataset; copied below

	// 1) Copy vertices, rotating everything but the poles.
	m := Mesh{
		Vertices: make([]Vertex, len(set.vertices)),
		Faces:    make([]Face, 0, len(set.faces)),
	}
	for i, v := range set.vertices {
		if cfg.lonOffset != 0 && v.Latitude != 90 && v.Latitude != -90 {
			v.Longitude = geo.WrapLongitude(v.Longitude + cfg.lonOffset)
		}
		m.Vertices[i] = v
	}

	// 2) Faces in lattice order get ids f0..f19.
	for i, idx := range set.faces {
		m.Faces = append(m.Faces, Face{
			ID:       seedID(i),
			Vertices: idx,
			Level:    0,
			Color:    ColorFor(0, 0),
		})
	}

	return m
}
