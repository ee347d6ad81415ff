// Package pipeline provides the diagram pipeline shared by the CLI, the
// HTTP server and watch mode.
//
// This package implements the complete decode → build → export pipeline.
// By centralizing this logic, every entry point gets the same caching,
// logging and metrics.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Decode: Parse the aggregate document for the requested diagram kind
//  2. Build: Run the kind's builder to produce Mermaid text
//  3. Export: Produce the requested formats (Mermaid, Markdown, DOT, SVG, PNG, PDF)
//
// Mermaid text and each exported artifact are cached separately, keyed by
// a hash of the aggregate and the options that affect them.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Kind:      "lineage",
//	    Aggregate: raw,
//	    Formats:   []string{"mmd", "svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.Empty {
//	    // nothing to draw
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/odpi/mermaidgraph/pkg/cache"
	"github.com/odpi/mermaidgraph/pkg/catalog"
	"github.com/odpi/mermaidgraph/pkg/errors"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid/builder"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Watch
// =============================================================================

const (
	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatMermaid  = "mmd"
	FormatMarkdown = "md"
	FormatDOT      = "dot"
	FormatSVG      = "svg"
	FormatPNG      = "png"
	FormatPDF      = "pdf"
)

// DefaultFormat is produced when no format is requested.
const DefaultFormat = FormatMermaid

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatMermaid:  true,
	FormatMarkdown: true,
	FormatDOT:      true,
	FormatSVG:      true,
	FormatPNG:      true,
	FormatPDF:      true,
}

// FormatNames lists the formats in display order.
var FormatNames = []string{FormatMermaid, FormatMarkdown, FormatDOT, FormatSVG, FormatPNG, FormatPDF}

// textFormats are derived from the Mermaid text alone; the rest need the
// diagram graph.
var textFormats = map[string]bool{
	FormatMermaid:  true,
	FormatMarkdown: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one diagram.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Kind names the diagram kind (see builder.Names).
	Kind string `json:"kind"`

	// Aggregate is the raw JSON aggregate for the kind.
	Aggregate json.RawMessage `json:"aggregate,omitempty"`

	// Build options
	Direction string   `json:"direction,omitempty"`
	Anchors   string   `json:"anchors,omitempty"`
	Include   []string `json:"include,omitempty"`
	Exclude   []string `json:"exclude,omitempty"`

	// Export options
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // Summary properties in Graphviz labels
	Scale    float64  `json:"scale,omitempty"`    // PNG scale factor

	// Refresh bypasses cache lookups; results are still stored.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
	builder   builder.Options
	kind      builder.Kind
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Kind and Title describe the diagram.
	Kind  string
	Title string

	// Diagram is the Mermaid text. It is empty when the builder found
	// nothing worth drawing.
	Diagram string

	// Empty reports that the diagram was cleared. No artifacts are
	// produced for an empty diagram.
	Empty bool

	// AggregateHash is the content hash of the input aggregate.
	AggregateHash string

	// Artifacts contains exported outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	BuildTime  time.Duration
	ExportTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	DiagramHit  bool // Whether the Mermaid text came from cache
	ArtifactHit bool // Whether all exported artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list. An empty string
// yields the default format.
func ParseFormats(s string) []string {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" && !slices.Contains(formats, f) {
			formats = append(formats, f)
		}
	}
	if len(formats) == 0 {
		return []string{DefaultFormat}
	}
	return formats
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the kind, aggregate and build options and
// applies defaults. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	k, err := builder.Lookup(o.Kind)
	if err != nil {
		return err
	}
	if len(o.Aggregate) == 0 {
		return errors.New(errors.ErrCodeInvalidAggregate, "aggregate is required")
	}
	bopts, err := builder.ParseOptions(o.Direction, o.Anchors, o.Include, o.Exclude)
	if err != nil {
		return err
	}

	o.SetExportDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	o.kind = k
	o.builder = bopts
	o.validated = true
	return nil
}

// UseDocument takes the aggregate from doc. A kind already set on o wins
// over the document's own kind.
func (o *Options) UseDocument(doc catalog.Document) error {
	if o.Kind == "" {
		o.Kind = doc.Kind
	}
	if o.Kind == "" {
		return errors.New(errors.ErrCodeInvalidKind,
			"diagram kind is required (set --kind or a \"kind\" field in the document)")
	}
	o.Aggregate = doc.Aggregate
	o.validated = false
	return nil
}

// SetExportDefaults sets default values for exporting.
func (o *Options) SetExportDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// NeedsGraph reports whether any requested format is drawn from the
// diagram graph rather than its text.
func (o *Options) NeedsGraph() bool {
	for _, f := range o.Formats {
		if !textFormats[f] {
			return true
		}
	}
	return false
}

// BuilderOptions returns the parsed build options. It is only meaningful
// after ValidateAndSetDefaults.
func (o *Options) BuilderOptions() builder.Options {
	return o.builder
}

// DiagramKeyOpts returns cache key options for the Mermaid text.
func (o *Options) DiagramKeyOpts() cache.DiagramKeyOpts {
	opts := cache.DiagramKeyOpts{
		Direction: string(o.builder.Direction),
		Anchors:   o.builder.Anchors.String(),
	}
	if o.builder.Filter != nil {
		opts.Filter = o.builder.Filter.Patterns()
	}
	return opts
}

// artifactVariant names the export options that change an artifact.
func (o *Options) artifactVariant(format string) string {
	switch format {
	case FormatPNG:
		return fmt.Sprintf("%s@%.2f:%t", format, o.Scale, o.Detailed)
	case FormatDOT, FormatSVG, FormatPDF:
		return fmt.Sprintf("%s:%t", format, o.Detailed)
	}
	return format
}
