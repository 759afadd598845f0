// Package svgexport renders the visible faces of a mesh to SVG under a
// geo.Viewport, for debugging and offline inspection.
//
// Each face is drawn as a polygon whose edges are sampled along great-circle
// arcs (spherical.Arc), filled with the face colour. Edges that cross the
// antimeridian are kept continuous in screen space instead of being drawn
// across the whole map. Rendering uses github.com/ajstarks/svgo.
package svgexport
