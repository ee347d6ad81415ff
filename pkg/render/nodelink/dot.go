package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/odpi/mermaidgraph/pkg/render"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid/styles"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes the summary properties in node labels.
	// When false, only the type and display name are shown.
	Detailed bool
}

// shapes maps Mermaid shape names to the closest Graphviz shape.
var shapes = map[string]string{
	"rect":       "box",
	"rounded":    "box",
	"stadium":    "box",
	"lin-rect":   "box",
	"div-rect":   "box3d",
	"fr-rect":    "component",
	"st-rect":    "box3d",
	"notch-rect": "box",
	"tag-rect":   "tab",
	"doc":        "note",
	"lin-doc":    "note",
	"docs":       "folder",
	"cyl":        "cylinder",
	"h-cyl":      "cylinder",
	"circle":     "circle",
	"sm-circ":    "circle",
	"dbl-circ":   "doublecircle",
	"hex":        "hexagon",
	"diam":       "diamond",
	"tri":        "triangle",
	"trap-t":     "invtrapezium",
	"lean-r":     "parallelogram",
	"flag":       "cds",
	"odd":        "larrow",
	"cloud":      "ellipse",
}

var rankdirs = map[mermaid.Direction]string{
	mermaid.TopDown:   "TB",
	mermaid.LeftRight: "LR",
	mermaid.RightLeft: "RL",
}

// ToDOT converts a diagram graph to Graphviz DOT format. Subgraphs become
// clusters and node styles carry over as fill, outline and font colours.
// Call it after [mermaid.Graph.Finalize] so anchor links are included.
func ToDOT(g *mermaid.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  label=%q;\n", g.Title())
	buf.WriteString("  labelloc=t;\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdirs[g.Direction()])
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	byGroup := make(map[string][]mermaid.Node)
	for _, n := range g.Nodes() {
		byGroup[n.Group] = append(byGroup[n.Group], n)
	}
	children := make(map[string][]mermaid.Group)
	for _, grp := range g.Groups() {
		children[grp.Parent] = append(children[grp.Parent], grp)
	}

	writeNodes(&buf, byGroup[""], opts, "  ")
	for _, grp := range children[""] {
		writeCluster(&buf, grp, byGroup, children, opts, "  ")
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From, e.To, strings.Join(edgeAttrs(e), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeCluster(buf *bytes.Buffer, grp mermaid.Group, byGroup map[string][]mermaid.Node, children map[string][]mermaid.Group, opts Options, indent string) {
	fmt.Fprintf(buf, "%ssubgraph \"cluster_%s\" {\n", indent, grp.ID)
	inner := indent + "  "
	fmt.Fprintf(buf, "%slabel=%q;\n", inner, grp.Name)
	if !grp.Style.IsZero() {
		fmt.Fprintf(buf, "%sstyle=\"rounded,filled\";\n", inner)
		fmt.Fprintf(buf, "%sfillcolor=%q;\n", inner, grp.Style.FillColour)
		fmt.Fprintf(buf, "%scolor=%q;\n", inner, grp.Style.LineColour)
		fmt.Fprintf(buf, "%sfontcolor=%q;\n", inner, grp.Style.TextColour)
	}
	writeNodes(buf, byGroup[grp.ID], opts, inner)
	for _, child := range children[grp.ID] {
		writeCluster(buf, child, byGroup, children, opts, inner)
	}
	fmt.Fprintf(buf, "%s}\n", indent)
}

func writeNodes(buf *bytes.Buffer, nodes []mermaid.Node, opts Options, indent string) {
	for _, n := range nodes {
		label := fmtLabel(n, opts.Detailed)
		fmt.Fprintf(buf, "%s%q [%s];\n", indent, n.ID, strings.Join(fmtAttrs(n, label), ", "))
	}
}

func fmtLabel(n mermaid.Node, detailed bool) string {
	label := n.TypeName + "\n" + n.Name
	if !detailed || len(n.Extra) == 0 {
		return label
	}

	parts := make([]string, 0, len(n.Extra))
	for _, k := range slices.Sorted(maps.Keys(n.Extra)) {
		parts = append(parts, fmt.Sprintf("%s: %s", k, n.Extra[k]))
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(n mermaid.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if shape, ok := shapes[n.Style.ShapeName()]; ok && shape != "box" {
		attrs = append(attrs, "shape="+shape)
	}
	if n.Style.IsZero() {
		return attrs
	}
	return append(attrs,
		fmt.Sprintf("fillcolor=%q", n.Style.FillColour),
		fmt.Sprintf("color=%q", n.Style.LineColour),
		fmt.Sprintf("fontcolor=%q", n.Style.TextColour),
	)
}

func edgeAttrs(e mermaid.Edge) []string {
	var attrs []string
	if e.Label != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", e.Label))
	}
	switch e.Line {
	case styles.LineNormal:
		attrs = append(attrs, "penwidth=2")
	case styles.LineLong:
		attrs = append(attrs, "minlen=2")
	case styles.LineLongAnimated:
		attrs = append(attrs, "minlen=2", "style=bold", "color=\"#0077B6\"")
	case styles.LineDotted:
		attrs = append(attrs, "style=dotted")
	case styles.LineInvisible:
		attrs = append(attrs, "style=invis")
	}
	if len(attrs) == 0 {
		attrs = append(attrs, "penwidth=1")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
