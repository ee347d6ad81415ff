package styles

import (
	"fmt"
	"strings"
)

// LineStyle selects the glyph used to draw an edge.
type LineStyle int

const (
	LineNormal LineStyle = iota
	LineLong
	LineThin
	LineDotted
	LineInvisible
	LineLongAnimated
)

type lineTemplate struct {
	name     string
	glyph    string
	labelled bool
	animated bool
}

var lineTemplates = [...]lineTemplate{
	LineNormal:       {name: "normal", glyph: "==>", labelled: true},
	LineLong:         {name: "long", glyph: "---->", labelled: true},
	LineThin:         {name: "thin", glyph: "-->", labelled: true},
	LineDotted:       {name: "dotted", glyph: "-.->", labelled: true},
	LineInvisible:    {name: "invisible", glyph: "~~~"},
	LineLongAnimated: {name: "long-animated", glyph: "---->", labelled: true, animated: true},
}

func (l LineStyle) template() lineTemplate {
	if l < 0 || int(l) >= len(lineTemplates) {
		return lineTemplates[LineNormal]
	}
	return lineTemplates[l]
}

// Glyph returns the Mermaid link glyph, e.g. "==>" or "-.->".
func (l LineStyle) Glyph() string { return l.template().glyph }

// Labelled reports whether edges drawn in this style carry their label.
func (l LineStyle) Labelled() bool { return l.template().labelled }

// Animated reports whether the edge gets an animation directive.
func (l LineStyle) Animated() bool { return l.template().animated }

func (l LineStyle) String() string { return l.template().name }

// ParseLineStyle returns the LineStyle with the given name.
func ParseLineStyle(name string) (LineStyle, error) {
	for i, t := range lineTemplates {
		if strings.EqualFold(t.name, name) {
			return LineStyle(i), nil
		}
	}
	return LineNormal, fmt.Errorf("unknown line style %q", name)
}

// relationshipLines holds the line style for relationship types that are
// not drawn as a normal edge.
var relationshipLines = map[string]LineStyle{
	"DataFlow":            LineLongAnimated,
	"ControlFlow":         LineLong,
	"ProcessCall":         LineThin,
	"LineageMapping":      LineThin,
	"UltimateSource":      LineLong,
	"UltimateDestination": LineLong,
	"ImplementedBy":       LineDotted,
	"DeployedOn":          LineDotted,
	"SolutionLinkingWire": LineThin,

	"InformationSupplyChainLink": LineLongAnimated,
}

// LineFor returns the line style used for relationships of type relType.
func LineFor(relType string) LineStyle {
	if l, ok := relationshipLines[relType]; ok {
		return l
	}
	return LineNormal
}

// CardinalityLabel formats a data field's position and cardinality as
// "[position] min..max". A negative bound is unbounded and prints as "*".
func CardinalityLabel(position, minCard, maxCard int) string {
	return fmt.Sprintf("[%d] %s..%s", position, bound(minCard), bound(maxCard))
}

func bound(n int) string {
	if n < 0 {
		return "*"
	}
	return fmt.Sprint(n)
}
