package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/odpi/mermaidgraph/pkg/cache"
	"github.com/odpi/mermaidgraph/pkg/observability"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid"
)

// Runner encapsulates pipeline execution with caching.
// The CLI, the server and watch mode all use it to avoid duplicating
// caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// DiagramTTL overrides cache.TTLDiagram when positive.
	DiagramTTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// diagramEntry is the cached form of a built diagram.
type diagramEntry struct {
	Title   string `json:"title"`
	Diagram string `json:"diagram"`
	Nodes   int    `json:"nodes"`
	Edges   int    `json:"edges"`
}

// Execute runs the complete decode → build → export pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		Kind:          opts.Kind,
		AggregateHash: cache.Hash(opts.Aggregate),
		Artifacts:     make(map[string][]byte),
	}

	// Stage 1+2: Decode and build
	buildStart := time.Now()
	entry, g, hit, err := r.buildCached(ctx, opts, result.AggregateHash)
	if err != nil {
		return nil, err
	}
	result.Title = entry.Title
	result.Diagram = entry.Diagram
	result.Empty = entry.Diagram == ""
	result.Stats.NodeCount = entry.Nodes
	result.Stats.EdgeCount = entry.Edges
	result.Stats.BuildTime = time.Since(buildStart)
	result.CacheInfo.DiagramHit = hit

	opts.Logger.Info("built diagram",
		"kind", opts.Kind,
		"nodes", entry.Nodes,
		"edges", entry.Edges,
		"cached", hit,
		"duration", result.Stats.BuildTime)

	if result.Empty {
		opts.Logger.Warn("nothing to draw", "kind", opts.Kind)
		return result, nil
	}

	// Stage 3: Export
	exportStart := time.Now()
	artifacts, exportHit, err := r.ExportWithCacheInfo(ctx, entry.Diagram, g, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.ExportTime = time.Since(exportStart)
	result.CacheInfo.ArtifactHit = exportHit

	opts.Logger.Debug("exported diagram",
		"formats", opts.Formats,
		"cached", exportHit,
		"duration", result.Stats.ExportTime)

	return result, nil
}

// buildCached returns the diagram for opts, from cache when
// possible. The graph is only returned when the diagram was built here,
// which happens on a cache miss.
func (r *Runner) buildCached(ctx context.Context, opts Options, aggregateHash string) (diagramEntry, *mermaid.Graph, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return diagramEntry{}, nil, false, err
	}
	key := r.Keyer.DiagramKey(opts.Kind, aggregateHash, opts.DiagramKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err != nil {
			r.Logger.Warn("cache lookup failed", "key", key, "err", err)
		} else if hit {
			var entry diagramEntry
			if err := json.Unmarshal(data, &entry); err == nil {
				observability.Cache().OnCacheHit(ctx, "diagram")
				return entry, nil, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "diagram")
	}

	g, err := r.Build(ctx, opts)
	if err != nil {
		return diagramEntry{}, nil, false, err
	}
	entry := diagramEntry{
		Title:   g.Title(),
		Diagram: g.Finalize(),
		Nodes:   g.NodeCount(),
		Edges:   g.EdgeCount(),
	}
	if entry.Diagram == "" {
		entry.Nodes, entry.Edges = 0, 0
	}

	if data, err := json.Marshal(entry); err == nil {
		if err := r.Cache.Set(ctx, key, data, r.diagramTTL()); err != nil {
			r.Logger.Warn("cache store failed", "key", key, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "diagram", len(data))
		}
	}
	return entry, g, false, nil
}

// Build decodes the aggregate and runs the kind's builder without touching
// the cache. The returned graph has not been finalized.
func (r *Runner) Build(ctx context.Context, opts Options) (*mermaid.Graph, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Kind)

	start := time.Now()
	g, err := opts.kind.Build(opts.Aggregate, opts.BuilderOptions())
	if err != nil {
		hooks.OnRenderComplete(ctx, opts.Kind, 0, 0, time.Since(start), err)
		return nil, err
	}

	nodes, edges := g.NodeCount(), g.EdgeCount()
	if g.Cleared() {
		nodes, edges = 0, 0
	}
	hooks.OnRenderComplete(ctx, opts.Kind, nodes, edges, time.Since(start), nil)
	return g, nil
}

// ExportWithCacheInfo produces the requested formats for a built diagram.
// g may be nil, in which case it is rebuilt only if a graph-based format
// misses the cache.
func (r *Runner) ExportWithCacheInfo(ctx context.Context, diagram string, g *mermaid.Graph, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	diagramHash := cache.Hash([]byte(diagram))
	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := true

	for _, format := range opts.Formats {
		if textFormats[format] {
			artifacts[format] = exportText(diagram, format)
			continue
		}

		key := r.Keyer.ArtifactKey(diagramHash, opts.artifactVariant(format))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}
		allCached = false

		if g == nil {
			built, err := r.Build(ctx, opts)
			if err != nil {
				return nil, false, err
			}
			built.Finalize()
			g = built
		}

		data, err := exportGraph(ctx, g, format, opts)
		if err != nil {
			return nil, false, err
		}
		artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return artifacts, allCached, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) diagramTTL() time.Duration {
	if r.DiagramTTL > 0 {
		return r.DiagramTTL
	}
	return cache.TTLDiagram
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
