// Package geomesh is an interactive geodesic triangle mesh on the unit
// sphere: a seed polyhedron laid over the globe whose faces are refined by
// clicking them.
//
// What is in the box?
//
//	A small, lock-guarded engine built on github.com/golang/geo:
//		• Vector math on r3.Vector, slerp included
//		• Lat/lng ↔ unit vector, Web-Mercator and equirectangular viewports
//		• Spherical distance, excess, area, containment, centroid and arcs
//		• Seed lattices (icosahedron, polar band) and a 3-way face split
//		• A click state machine with undo/redo and a single-writer controller
//
// Layout:
//
//	vecmath/    r3 helpers: normalize, angle, lerp, slerp
//	geo/        Coordinate, Viewport, Project/Unproject
//	spherical/  haversine, spherical excess, containment, arcs
//	mesh/       Mesh/Face model, seeds, validation, colours, stats, visibility
//	subdivide/  split a face at its centroid or a click point
//	state/      click/subdivide/undo/redo/reset, Controller, Observer hook
//	metrics/    Prometheus observer
//	store/      JSON session documents on disk, Redis or PostgreSQL
//	svgexport/  SVG rendering of the visible faces
//	cmd/geomesh CLI over all of the above
//
// A face is clicked ten times to charge it; the eleventh click splits it
// into three children one level deeper. Faces at level 19 cannot split and
// are marked exhausted instead.
//
//	go install github.com/katalvlaran/geomesh/cmd/geomesh@latest
package geomesh
