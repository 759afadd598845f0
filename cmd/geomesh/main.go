// Command geomesh drives a persisted geodesic mesh session from the shell:
// click faces, subdivide, undo/redo, print stats and export SVG.
//
// Configuration comes from the environment (and .env):
//
//	GEOMESH_STORE   file (default), redis or postgres
//	GEOMESH_DIR     file backend directory (default .geomesh)
//	REDIS_ADDR, REDIS_PASS, REDIS_DB, REDIS_PREFIX
//	GEOMESH_PG_DSN  postgres connection string
//	LOG_LEVEL       debug, info, warn, error
//	LOG_FORMAT      text or json
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
