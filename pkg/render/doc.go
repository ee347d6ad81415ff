// Package render holds the output formats a diagram can be turned into
// beyond Mermaid text.
//
// # Overview
//
// Diagrams are built as Mermaid flowcharts (in [mermaid] and its
// [builder] subpackage). The same graph can also be drawn as a Graphviz
// node-link diagram by [nodelink], which renders SVG in-process. The
// [ToPDF] and [ToPNG] functions convert any SVG to other formats using the
// external rsvg-convert tool (from librsvg):
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// Use [HasConverter] to check for rsvg-convert before offering PDF or PNG.
//
// [mermaid]: github.com/odpi/mermaidgraph/pkg/render/mermaid
// [builder]: github.com/odpi/mermaidgraph/pkg/render/mermaid/builder
// [nodelink]: github.com/odpi/mermaidgraph/pkg/render/nodelink
package render
