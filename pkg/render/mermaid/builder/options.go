package builder

import (
	"github.com/odpi/mermaidgraph/pkg/catalog"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid"
)

// Options tune a diagram. The zero value uses every builder's defaults.
type Options struct {
	// Direction overrides the builder's default flowchart direction.
	Direction mermaid.Direction
	// Anchors overrides which anchor links are drawn.
	Anchors mermaid.AnchorMode
	// Filter limits which relationship types are drawn. Nil draws all.
	Filter *catalog.RelationshipFilter
}

// ParseOptions builds Options from their textual forms as used by the
// command line, the config file and the HTTP API.
func ParseOptions(direction, anchors string, include, exclude []string) (Options, error) {
	dir, err := mermaid.ParseDirection(direction)
	if err != nil {
		return Options{}, err
	}
	mode, err := mermaid.ParseAnchorMode(anchors)
	if err != nil {
		return Options{}, err
	}
	filter, err := catalog.NewRelationshipFilter(include, exclude)
	if err != nil {
		return Options{}, err
	}
	return Options{Direction: dir, Anchors: mode, Filter: filter}, nil
}
