package kv

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/amonks/taskmaster/internal/validation"
)

// Backend names a Store implementation.
type Backend string

const (
	// BackendFile stores keys in a JSON file in the state directory.
	BackendFile Backend = "file"

	// BackendSQLite stores keys in a SQLite database.
	BackendSQLite Backend = "sqlite"

	// BackendRedis stores keys in Redis.
	BackendRedis Backend = "redis"

	// BackendMemory keeps keys in memory for the life of the process.
	BackendMemory Backend = "memory"
)

// ValidBackends returns all valid backend names.
func ValidBackends() []Backend {
	return []Backend{BackendFile, BackendSQLite, BackendRedis, BackendMemory}
}

// IsValid returns true if the backend is a known value.
func (b Backend) IsValid() bool {
	for _, valid := range ValidBackends() {
		if b == valid {
			return true
		}
	}
	return false
}

// Options configures Open.
type Options struct {
	// Backend selects the implementation. Defaults to BackendFile.
	Backend Backend

	// Dir is the state directory used by the file backend and as the
	// default location of the SQLite database.
	Dir string

	// SQLitePath overrides the SQLite database path.
	SQLitePath string

	// Redis configures the Redis backend.
	Redis RedisOptions
}

// Open opens the store selected by opts.
func Open(ctx context.Context, opts Options) (Store, error) {
	backend := Backend(strings.ToLower(strings.TrimSpace(string(opts.Backend))))
	if backend == "" {
		backend = BackendFile
	}

	switch backend {
	case BackendFile:
		if opts.Dir == "" {
			return nil, fmt.Errorf("file backend requires a state directory")
		}
		return NewFile(opts.Dir), nil
	case BackendSQLite:
		path := opts.SQLitePath
		if path == "" {
			if opts.Dir == "" {
				return nil, fmt.Errorf("sqlite backend requires a database path")
			}
			path = filepath.Join(opts.Dir, "taskmaster.db")
		}
		return OpenSQLite(ctx, path)
	case BackendRedis:
		if opts.Redis.Addr == "" {
			return nil, fmt.Errorf("redis backend requires an address")
		}
		return OpenRedis(ctx, opts.Redis)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, validation.FormatInvalidValueError(ErrUnknownBackend, backend, ValidBackends())
	}
}
