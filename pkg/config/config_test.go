package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/odpi/mermaidgraph/pkg/cache"
	"github.com/odpi/mermaidgraph/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[render]
direction = "TD"
anchors = "all"
exclude = ["*Memento*"]
formats = ["mmd", "svg"]

[cache]
backend = "redis"
ttl = "12h"

[cache.redis]
addr = "cache.internal:6379"
db = 2
prefix = "mg:"

[server]
addr = ":9090"
read_timeout = "5s"

[log]
level = "debug"
format = "json"

[watch]
debounce = "1s"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Render.Direction != "TD" || cfg.Render.Anchors != "all" {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if len(cfg.Render.Exclude) != 1 || cfg.Render.Exclude[0] != "*Memento*" {
		t.Errorf("Exclude = %v", cfg.Render.Exclude)
	}
	if cfg.Cache.Backend != cache.BackendRedis {
		t.Errorf("Backend = %q, want redis", cfg.Cache.Backend)
	}
	if cfg.Cache.Redis.Addr != "cache.internal:6379" || cfg.Cache.Redis.DB != 2 || cfg.Cache.Redis.Prefix != "mg:" {
		t.Errorf("Redis = %+v", cfg.Cache.Redis)
	}
	if cfg.Cache.TTL != 12*time.Hour {
		t.Errorf("TTL = %v, want 12h", cfg.Cache.TTL)
	}
	if cfg.Server.Addr != ":9090" || cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Server.WriteTimeout != Default().Server.WriteTimeout {
		t.Errorf("WriteTimeout = %v, want default", cfg.Server.WriteTimeout)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Watch.Debounce != time.Second {
		t.Errorf("Debounce = %v, want 1s", cfg.Watch.Debounce)
	}
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	def := Default()
	if cfg.Cache.Backend != def.Cache.Backend || cfg.Server.Addr != def.Server.Addr {
		t.Errorf("Load(empty) = %+v, want defaults", cfg)
	}
	if len(cfg.Render.Formats) != 1 || cfg.Render.Formats[0] != "mmd" {
		t.Errorf("Formats = %v, want [mmd]", cfg.Render.Formats)
	}
	if cfg.Watch.Debounce != 300*time.Millisecond {
		t.Errorf("Debounce = %v", cfg.Watch.Debounce)
	}
}

func TestLoadMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(default path) error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}

	_, err = Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load(missing explicit path) error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[render\n", "parse"},
		{"unknown key", "[render]\ncolour = \"red\"\n", "render.colour"},
		{"bad direction", "[render]\ndirection = \"up\"\n", "[render]"},
		{"bad anchors", "[render]\nanchors = \"some\"\n", "[render]"},
		{"bad format", "[render]\nformats = [\"gif\"]\n", "formats"},
		{"bad backend", "[cache]\nbackend = \"memcached\"\n", "memcached"},
		{"bad level", "[log]\nlevel = \"loud\"\n", "[log]"},
		{"bad log format", "[log]\nformat = \"xml\"\n", "xml"},
		{"bad duration", "[watch]\ndebounce = \"soon\"\n", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Fatalf("Load() error = %v, want INVALID_CONFIG", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/etc/xdg")
	if got := DefaultPath(); got != filepath.Join("/etc/xdg", "mermaidgraph", "config.toml") {
		t.Errorf("DefaultPath() = %q", got)
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/var/cache")
	if got := CacheDir(); got != filepath.Join("/var/cache", "mermaidgraph") {
		t.Errorf("CacheDir() = %q", got)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Render.Direction = "RL"
	cfg.Cache.Backend = cache.BackendMongo

	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Load(writeConfig(t, buf.String()))
	if err != nil {
		t.Fatalf("Load(encoded) error: %v\n%s", err, buf.String())
	}
	if got.Render.Direction != "RL" || got.Cache.Backend != cache.BackendMongo {
		t.Errorf("round trip lost values: %+v", got)
	}
	if got.Watch.Debounce != cfg.Watch.Debounce {
		t.Errorf("Debounce = %v, want %v", got.Watch.Debounce, cfg.Watch.Debounce)
	}
}
