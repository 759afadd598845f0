// Package config reads the CLI environment (optionally from .env files via
// godotenv) and opens the configured document store.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/geomesh/store"
)

// Store backends selectable through GEOMESH_STORE.
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// DefaultDir is the file backend directory when GEOMESH_DIR is unset.
const DefaultDir = ".geomesh"

// ErrUnknownBackend indicates an unsupported GEOMESH_STORE value.
var ErrUnknownBackend = errors.New("config: unknown store backend")

// Config is the resolved environment.
type Config struct {
	Backend     string
	Dir         string
	RedisAddr   string
	RedisPass   string
	RedisDB     int
	RedisPrefix string
	PostgresDSN string
}

// LoadEnv loads the given .env files, ignoring missing ones. Variables
// already set in the process environment win.
func LoadEnv(files ...string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// FromEnv resolves Config from the process environment.
func FromEnv() Config {
	cfg := Config{
		Backend:     strings.ToLower(os.Getenv("GEOMESH_STORE")),
		Dir:         os.Getenv("GEOMESH_DIR"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RedisPass:   os.Getenv("REDIS_PASS"),
		RedisPrefix: os.Getenv("REDIS_PREFIX"),
		PostgresDSN: os.Getenv("GEOMESH_PG_DSN"),
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendFile
	}
	if cfg.Dir == "" {
		cfg.Dir = DefaultDir
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "127.0.0.1:6379"
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.RedisDB = n
		}
	}

	return cfg
}

// OpenStore opens the backend named by cfg. The returned close function
// releases any connection and is never nil.
func OpenStore(ctx context.Context, cfg Config) (store.Store, func() error, error) {
	nop := func() error { return nil }
	switch cfg.Backend {
	case BackendFile:
		s, err := store.NewFile(cfg.Dir)
		if err != nil {
			return nil, nop, fmt.Errorf("OpenStore: %w", err)
		}
		return s, nop, nil
	case BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPass, DB: cfg.RedisDB})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nop, fmt.Errorf("OpenStore: redis %s: %w", cfg.RedisAddr, err)
		}
		return store.NewRedis(client, cfg.RedisPrefix), client.Close, nil
	case BackendPostgres:
		s, err := store.OpenPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nop, fmt.Errorf("OpenStore: %w", err)
		}
		return s, s.Close, nil
	default:
		return nil, nop, fmt.Errorf("OpenStore: %q: %w", cfg.Backend, ErrUnknownBackend)
	}
}
