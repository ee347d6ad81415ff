// Package pkg provides the core libraries for mermaidgraph catalog diagrams.
//
// # Overview
//
// mermaidgraph turns metadata catalog aggregates (an element with its
// neighbours, lineage around an asset, a glossary tree, a solution
// blueprint, an information supply chain and so on) into Mermaid flowchart
// text that any Mermaid renderer can draw. The pkg directory is organized
// into four areas:
//
//  1. [catalog] - Aggregate types, relationship filters, JSON/YAML documents
//  2. [render] - Mermaid graph buffer, styles, per-kind builders, Graphviz previews
//  3. [pipeline] - Orchestration (decode → build → export) with caching
//  4. [cache], [config], [observability], [watch] - Infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	Aggregate document (JSON or YAML)
//	         ↓
//	    [catalog] package (decode, relationship filter)
//	         ↓
//	    [builder] package (one builder per diagram kind)
//	         ↓
//	    [mermaid] package (graph buffer, anchors, finalize)
//	         ↓
//	    Mermaid text, Markdown, DOT/SVG/PNG/PDF
//
// # Quick Start
//
// Draw an element graph from raw JSON:
//
//	import (
//	    "github.com/odpi/mermaidgraph/pkg/render/mermaid/builder"
//	)
//
//	k, err := builder.Lookup("element")
//	if err != nil {
//	    return err
//	}
//	text, err := k.Render(raw, builder.Options{})
//
// Or run the full pipeline with caching and extra formats:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Kind:      "lineage",
//	    Aggregate: raw,
//	    Formats:   []string{"mmd", "svg"},
//	})
//
// # Main Packages
//
// [mermaid] - The graph buffer. Nodes get short sequential ids, edges are
// deduplicated by relationship, subgraph groups nest, and anchor links are
// appended when the diagram is finalized.
//
// [styles] - The style registry: a visual style per entity type name and a
// line style per relationship type name, with principal styles for the
// root of each diagram.
//
// [builder] - One builder per diagram kind, sharing a single traversal
// shape. [builder.Lookup] dispatches by kind name.
//
// [nodelink] - Graphviz DOT of a finished graph, rendered to SVG in-process.
//
// [pipeline] - Option validation, cache keys and artifact export used by
// the CLI and the HTTP server alike.
//
// [cache] - File, Redis and MongoDB backends behind one interface, with
// pluggable key strategies.
//
// [errors] - Coded errors shared by every layer and mapped to exit codes
// and HTTP statuses at the edges.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/render/mermaid/...     # Specific package
//	go test -run Example                 # Examples only
//
// [catalog]: https://pkg.go.dev/github.com/odpi/mermaidgraph/pkg/catalog
// [render]: https://pkg.go.dev/github.com/odpi/mermaidgraph/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/odpi/mermaidgraph/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/odpi/mermaidgraph/pkg/cache
// [config]: https://pkg.go.dev/github.com/odpi/mermaidgraph/pkg/config
// [observability]: https://pkg.go.dev/github.com/odpi/mermaidgraph/pkg/observability
// [watch]: https://pkg.go.dev/github.com/odpi/mermaidgraph/pkg/watch
// [builder]: https://pkg.go.dev/github.com/odpi/mermaidgraph/pkg/render/mermaid/builder
// [builder.Lookup]: https://pkg.go.dev/github.com/odpi/mermaidgraph/pkg/render/mermaid/builder#Lookup
// [mermaid]: https://pkg.go.dev/github.com/odpi/mermaidgraph/pkg/render/mermaid
// [styles]: https://pkg.go.dev/github.com/odpi/mermaidgraph/pkg/render/mermaid/styles
// [nodelink]: https://pkg.go.dev/github.com/odpi/mermaidgraph/pkg/render/nodelink
// [errors]: https://pkg.go.dev/github.com/odpi/mermaidgraph/pkg/errors
package pkg
