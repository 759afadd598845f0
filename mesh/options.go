// SPDX-License-Identifier: MIT
// Package: geomesh/mesh
//
// options.go — functional options for seed generation.
//
// Contract:
//   • Options are functional (type Option func(*seedConfig)).
//   • Option constructors validate and PANIC on meaningless inputs;
//     Generate itself never panics.
//   • No hidden globals; everything flows through seedConfig.

package mesh

import "math"

// Option customizes seed generation.
// Complexity: applying N options costs O(N).
type Option func(*seedConfig)

type seedConfig struct {
	lattice   Lattice
	lonOffset float64
}

func newSeedConfig(opts ...Option) seedConfig {
	cfg := seedConfig{lattice: Icosahedron} // defaults first
	for _, opt := range opts {
		opt(&cfg) // last writer wins
	}

	return cfg
}

// WithLattice selects the seed lattice. Panics on an unknown value.
func WithLattice(l Lattice) Option {
	if _, ok := latticeSets[l]; !ok {
		// Fail fast: option constructors validate and panic.
		panic("mesh: WithLattice(unknown lattice)")
	}
	return func(c *seedConfig) {
		c.lattice = l
	}
}

// WithLongitudeOffset rotates the seed lattice about the polar axis by deg
// degrees. Panics on NaN or ±Inf.
func WithLongitudeOffset(deg float64) Option {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		panic("mesh: WithLongitudeOffset(non-finite)")
	}
	return func(c *seedConfig) {
		c.lonOffset = deg
	}
}
