// Package nodelink renders diagram graphs as Graphviz node-link diagrams.
//
// # Overview
//
// The Mermaid text built by the diagram builders needs a Mermaid renderer
// to be viewed. This package draws the same [mermaid.Graph] with Graphviz
// instead, so a diagram can be previewed or exported as SVG, PDF or PNG
// without one. Node colours and shapes follow the diagram's styles and
// subgraphs become Graphviz clusters.
//
// # Usage
//
// Finalize the graph first so anchor links are part of it, then convert
// it to DOT and render:
//
//	text := g.Finalize()
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include the summary properties
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
