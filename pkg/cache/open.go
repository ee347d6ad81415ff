package cache

import (
	"context"
	"fmt"
	"strings"
)

// Backend names accepted by Open.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Backends lists the accepted backend names.
var Backends = []string{BackendNone, BackendFile, BackendRedis, BackendMongo}

// Config selects and configures a cache backend.
type Config struct {
	// Backend is one of Backends. Empty means "file".
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"`
	Redis   RedisConfig `toml:"redis"`
	Mongo   MongoConfig `toml:"mongo"`
}

// Open creates the backend named by cfg.Backend. The file backend needs
// cfg.Dir; network backends connect before returning.
func Open(ctx context.Context, cfg Config) (Cache, error) {
	switch strings.ToLower(cfg.Backend) {
	case BackendNone:
		return NewNullCache(), nil
	case "", BackendFile:
		if cfg.Dir == "" {
			return nil, fmt.Errorf("file cache: directory is required")
		}
		return asCache(NewFileCache(cfg.Dir))
	case BackendRedis:
		return asCache(NewRedisCache(ctx, cfg.Redis))
	case BackendMongo:
		return asCache(NewMongoCache(ctx, cfg.Mongo))
	}
	return nil, fmt.Errorf("%w: %q (use one of %s)", ErrUnknownBackend, cfg.Backend, strings.Join(Backends, ", "))
}

// asCache keeps a failed constructor's typed nil out of the interface.
func asCache[C Cache](c C, err error) (Cache, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}
