// Package geo converts between geographic coordinates, unit-sphere vectors
// and screen space.
//
// What:
//
//   - Coordinate: latitude/longitude in degrees, an immutable value type with
//     interop to github.com/golang/geo/s2 (LatLng, Point).
//   - ToVector / FromVector: exact inverses on the unit sphere
//     (x = cosφ·cosλ, y = cosφ·sinλ, z = sinφ).
//   - Viewport + Project / Unproject: Web-Mercator (default) and
//     equirectangular screen projections with zoom, centre, size and rotation.
//
// Conventions:
//
//   - World coordinates are normalized to [0,1] horizontally. The world is
//     TileSize·2^zoom pixels wide, so zoom 0 maps the whole Mercator square
//     onto a single 256×256 tile.
//   - Screen y grows downward; Viewport.Rotation is in degrees clockwise
//     about the viewport centre.
//
// Errors:
//
//   - ErrLatitudeRange / ErrLongitudeRange: coordinate outside its domain or NaN.
//   - ErrProjectionSingularity: |latitude| ≥ 90° fed to Mercator, or any
//     intermediate result that is not finite.
//   - ErrInvalidViewport: negative zoom, non-positive size or non-finite fields.
package geo
