package pipeline

import (
	"context"
	"time"

	"github.com/odpi/mermaidgraph/pkg/errors"
	"github.com/odpi/mermaidgraph/pkg/observability"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid"
	"github.com/odpi/mermaidgraph/pkg/render/nodelink"
)

// exportText produces the formats that only need the Mermaid text.
func exportText(diagram, format string) []byte {
	if format == FormatMarkdown {
		return []byte(MarkdownBlock(diagram))
	}
	return []byte(diagram)
}

// MarkdownBlock wraps a diagram in a fenced mermaid code block.
func MarkdownBlock(diagram string) string {
	return "```mermaid\n" + diagram + "```\n"
}

// exportGraph draws a finalized graph through Graphviz.
func exportGraph(ctx context.Context, g *mermaid.Graph, format string, opts Options) (data []byte, err error) {
	start := time.Now()
	defer func() {
		observability.Pipeline().OnArtifactComplete(ctx, format, len(data), time.Since(start), err)
	}()

	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: opts.Detailed})

	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		data, err = nodelink.RenderSVG(ctx, dot)
	case FormatPNG:
		data, err = nodelink.RenderPNG(ctx, dot, opts.Scale)
	case FormatPDF:
		data, err = nodelink.RenderPDF(ctx, dot)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
	}
	return data, nil
}
