// Package config loads the mermaidgraph configuration file.
//
// The file is TOML. Every section is optional and missing values fall
// back to [Default]:
//
//	[render]
//	direction = "LR"
//	anchors   = "existing"
//	exclude   = ["*Memento*"]
//	formats   = ["mmd", "svg"]
//
//	[cache]
//	backend = "redis"
//	ttl     = "12h"
//	scope   = "staging:"
//
//	[cache.redis]
//	addr = "cache.internal:6379"
//
//	[server]
//	addr = ":8080"
//
//	[log]
//	level  = "debug"
//	format = "logfmt"
//
//	[watch]
//	debounce = "500ms"
//
// Command-line flags override values from the file.
package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/odpi/mermaidgraph/pkg/cache"
	mgerrors "github.com/odpi/mermaidgraph/pkg/errors"
	"github.com/odpi/mermaidgraph/pkg/pipeline"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid/builder"
)

// AppName names the configuration and cache directories.
const AppName = "mermaidgraph"

// Config is the complete configuration.
type Config struct {
	Render Render `toml:"render"`
	Cache  Cache  `toml:"cache"`
	Server Server `toml:"server"`
	Log    Log    `toml:"log"`
	Watch  Watch  `toml:"watch"`
}

// Render holds the default diagram options.
type Render struct {
	Direction string   `toml:"direction"`
	Anchors   string   `toml:"anchors"`
	Include   []string `toml:"include"`
	Exclude   []string `toml:"exclude"`
	Formats   []string `toml:"formats"`
	Detailed  bool     `toml:"detailed"`
}

// Cache selects the cache backend.
type Cache struct {
	cache.Config
	TTL time.Duration `toml:"ttl"`

	// Scope prefixes every key, letting deployments share a backend.
	Scope string `toml:"scope"`
}

// Server configures the HTTP API.
type Server struct {
	Addr         string        `toml:"addr"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
	MaxBodyBytes int64         `toml:"max_body_bytes"`
}

// Log configures logging. Level is a charmbracelet/log level name and
// Format one of [LogFormats].
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// LogFormats lists the accepted [log] format values.
var LogFormats = []string{"text", "json", "logfmt"}

// Watch configures watch mode.
type Watch struct {
	Debounce time.Duration `toml:"debounce"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Render: Render{Formats: []string{pipeline.DefaultFormat}},
		Cache: Cache{
			Config: cache.Config{Backend: cache.BackendFile, Dir: CacheDir()},
			TTL:    cache.TTLDiagram,
		},
		Server: Server{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 60 * time.Second,
			MaxBodyBytes: 8 << 20,
		},
		Log:   Log{Level: "info", Format: "text"},
		Watch: Watch{Debounce: 300 * time.Millisecond},
	}
}

// Load reads the file at path over the defaults. An empty path means
// DefaultPath; a missing default file is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return nil, mgerrors.Wrap(mgerrors.ErrCodeInvalidConfig, err, "read config")
	}

	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, mgerrors.Wrap(mgerrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, mgerrors.New(mgerrors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg.fill()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fill restores defaults for values the file set to zero.
func (c *Config) fill() {
	def := Default()
	if len(c.Render.Formats) == 0 {
		c.Render.Formats = def.Render.Formats
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = def.Cache.Backend
	}
	if c.Cache.Dir == "" {
		c.Cache.Dir = def.Cache.Dir
	}
	if c.Cache.TTL <= 0 {
		c.Cache.TTL = def.Cache.TTL
	}
	if c.Server.Addr == "" {
		c.Server.Addr = def.Server.Addr
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = def.Server.ReadTimeout
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = def.Server.WriteTimeout
	}
	if c.Server.MaxBodyBytes <= 0 {
		c.Server.MaxBodyBytes = def.Server.MaxBodyBytes
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
	if c.Watch.Debounce <= 0 {
		c.Watch.Debounce = def.Watch.Debounce
	}
}

// Validate checks values that the decoder cannot.
func (c *Config) Validate() error {
	if _, err := builder.ParseOptions(c.Render.Direction, c.Render.Anchors, c.Render.Include, c.Render.Exclude); err != nil {
		return mgerrors.Wrap(mgerrors.ErrCodeInvalidConfig, err, "[render]")
	}
	if err := pipeline.ValidateFormats(c.Render.Formats); err != nil {
		return mgerrors.Wrap(mgerrors.ErrCodeInvalidConfig, err, "[render] formats")
	}
	if !validBackend(c.Cache.Backend) {
		return mgerrors.New(mgerrors.ErrCodeInvalidConfig,
			"[cache] backend %q (use one of %s)", c.Cache.Backend, strings.Join(cache.Backends, ", "))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return mgerrors.Wrap(mgerrors.ErrCodeInvalidConfig, err, "[log] level")
	}
	if !lo.Contains(LogFormats, strings.ToLower(c.Log.Format)) {
		return mgerrors.New(mgerrors.ErrCodeInvalidConfig,
			"[log] format %q (use one of %s)", c.Log.Format, strings.Join(LogFormats, ", "))
	}
	return nil
}

func validBackend(name string) bool {
	for _, b := range cache.Backends {
		if strings.EqualFold(b, name) {
			return true
		}
	}
	return false
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// DefaultPath returns $XDG_CONFIG_HOME/mermaidgraph/config.toml, falling
// back to ~/.config.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", AppName+".toml")
	}
	return filepath.Join(home, ".config", AppName, "config.toml")
}

// CacheDir returns the cache directory using XDG standard (~/.cache/mermaidgraph/).
func CacheDir() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppName)
	}
	return filepath.Join(home, ".cache", AppName)
}
