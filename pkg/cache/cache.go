// Package cache stores rendered diagrams so repeated requests for the same
// aggregate and options skip the builders.
//
// # Backends
//
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: one JSON file per entry under a directory, for the CLI
//   - [RedisCache]: shared cache for server deployments
//   - [MongoCache]: shared cache with a TTL index for expiry
//
// [Open] selects a backend from a [Config].
//
// # Keys
//
// A [Keyer] derives keys from the diagram kind, a hash of the aggregate
// document and the render options, so any change to the input or options
// is a different entry:
//
//	key := keyer.DiagramKey("lineage", cache.Hash(raw), cache.DiagramKeyOpts{Direction: "LR"})
//
// Backends that talk to a network wrap transient failures with [Retryable];
// [RetryWithBackoff] retries only those.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A miss is reported as hit=false with a
	// nil error.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// Default time-to-live values for cached entries.
const (
	// TTLDiagram applies to rendered Mermaid text.
	TTLDiagram = 24 * time.Hour

	// TTLArtifact applies to derived artifacts (DOT, SVG, PNG, PDF).
	TTLArtifact = 7 * 24 * time.Hour
)

// DiagramKeyOpts are the render options that change a diagram's text.
type DiagramKeyOpts struct {
	Direction string   `json:"direction,omitempty"`
	Anchors   string   `json:"anchors,omitempty"`
	Filter    []string `json:"filter,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// DiagramKey returns the key for the Mermaid text of a diagram.
	DiagramKey(kind, aggregateHash string, opts DiagramKeyOpts) string

	// ArtifactKey returns the key for a derived format of a diagram,
	// identified by the hash of its Mermaid text.
	ArtifactKey(diagramHash, format string) string
}

// DefaultKeyer produces keys of the form "diagram:<sha256>" and
// "artifact:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// DiagramKey hashes the kind, aggregate hash and options together.
func (DefaultKeyer) DiagramKey(kind, aggregateHash string, opts DiagramKeyOpts) string {
	return keyOf("diagram", kind, aggregateHash, opts)
}

// ArtifactKey hashes the diagram hash and format together.
func (DefaultKeyer) ArtifactKey(diagramHash, format string) string {
	return keyOf("artifact", diagramHash, format)
}

// keyOf returns "<prefix>:<sha256>" over the JSON encoding of parts.
// Struct fields are encoded in declaration order, so equal options give
// equal keys.
func keyOf(prefix string, parts ...any) string {
	h := sha256.New()
	_ = json.NewEncoder(h).Encode(parts)
	return prefix + ":" + hex.EncodeToString(h.Sum(nil))
}

// Hash returns the hex SHA-256 of data. Aggregate documents are keyed by
// it and [FileCache] names its entry files with it.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
