// Package store persists mesh sessions (a mesh plus its undo/redo history)
// as JSON documents.
//
// What:
//
//   - Document / Encode / Decode: the JSON document, lossless for every
//     vertex and face field. Decode validates the mesh and every history
//     snapshot, so a malformed document never reaches a renderer.
//   - Store: Save / Load / Delete by key, implemented by
//     File (one JSON file per key in a directory),
//     Redis (github.com/redis/go-redis/v9, one string value per key),
//     Postgres (database/sql + github.com/lib/pq, one JSONB row per key).
//
// Errors:
//
//   - ErrNotFound: no document under the key.
//   - ErrInvalidDocument: the stored bytes are not a valid session.
//   - ErrEmptyKey: an empty key was supplied.
//   - ErrInvalidKey: the key cannot name a document in this backend.
package store
