// Package styles holds the static style tables for Mermaid diagrams.
//
// A [VisualStyle] is an immutable (text colour, fill colour, line colour,
// shape) tuple. Styles are resolved from an element's type chain first (most
// specific type wins) and then overridden by special classifications such as
// Memento or Template. Relationship types map to styles for the element at
// the far end and to a [LineStyle] for the edge itself.
//
// Everything here is static data plus pure lookup functions; nothing is
// mutated at runtime.
package styles

import "fmt"

// VisualStyle describes how a node or group is drawn.
type VisualStyle struct {
	Name       string // Table name, for debugging and tests
	TextColour string
	FillColour string
	LineColour string
	Shape      string // Mermaid shape name, e.g. "rect", "cyl", "doc"
}

// IsZero reports whether s carries no styling. Zero styles produce no
// style directive.
func (s VisualStyle) IsZero() bool {
	return s.TextColour == "" && s.FillColour == "" && s.LineColour == ""
}

// ShapeName returns the Mermaid shape, defaulting to "rect".
func (s VisualStyle) ShapeName() string {
	if s.Shape == "" {
		return "rect"
	}
	return s.Shape
}

// Directive returns the body of a Mermaid style statement.
func (s VisualStyle) Directive() string {
	return fmt.Sprintf("color:%s,fill:%s,stroke:%s", s.TextColour, s.FillColour, s.LineColour)
}

func style(name, text, fill, line, shape string) VisualStyle {
	return VisualStyle{Name: name, TextColour: text, FillColour: fill, LineColour: line, Shape: shape}
}

// Principal styles mark the root of a diagram so it stands out from the
// elements around it.
var (
	PrincipalAsset         = style("PrincipalAsset", "#FFFFFF", "#004563", "#004563", "rounded")
	PrincipalElement       = style("PrincipalElement", "#FFFFFF", "#2A4F6E", "#2A4F6E", "rounded")
	PrincipalProject       = style("PrincipalProject", "#FFFFFF", "#5C3A92", "#5C3A92", "rounded")
	PrincipalCollection    = style("PrincipalCollection", "#FFFFFF", "#8A5A00", "#8A5A00", "docs")
	PrincipalGlossary      = style("PrincipalGlossary", "#FFFFFF", "#1B5E20", "#1B5E20", "docs")
	PrincipalTerm          = style("PrincipalTerm", "#FFFFFF", "#2E7D32", "#2E7D32", "doc")
	PrincipalDefinition    = style("PrincipalDefinition", "#FFFFFF", "#7B1F1F", "#7B1F1F", "flag")
	PrincipalSolution      = style("PrincipalSolution", "#FFFFFF", "#00575C", "#00575C", "rounded")
	PrincipalSupplyChain   = style("PrincipalSupplyChain", "#FFFFFF", "#3E2723", "#3E2723", "lin-rect")
	PrincipalDataStructure = style("PrincipalDataStructure", "#FFFFFF", "#37474F", "#37474F", "div-rect")
)

// Styles for the elements drawn around the principal node.
var (
	AnchorElement      = style("AnchorElement", "#FFFFFF", "#3079AB", "#3079AB", "rounded")
	LinkedElement      = style("LinkedElement", "#000000", "#F4F6F7", "#3079AB", "rect")
	LineageElement     = style("LineageElement", "#000000", "#E8F4FA", "#0077B6", "rect")
	UltimateSource     = style("UltimateSource", "#000000", "#D8F3DC", "#2D6A4F", "stadium")
	UltimateTarget     = style("UltimateTarget", "#000000", "#FFE5D9", "#9D0208", "stadium")
	SolutionComponent  = style("SolutionComponent", "#000000", "#D1F2EB", "#00575C", "rounded")
	SolutionActor      = style("SolutionActor", "#000000", "#FDEBD0", "#A04000", "circle")
	Host               = style("Host", "#000000", "#EAEDED", "#566573", "div-rect")
	GovernanceElement  = style("GovernanceElement", "#000000", "#FADBD8", "#7B1F1F", "flag")
	GovernanceMetric   = style("GovernanceMetric", "#000000", "#FCF3CF", "#9A7D0A", "dbl-circ")
	GlossaryCategory   = style("GlossaryCategory", "#000000", "#E9F7EF", "#1B5E20", "tag-rect")
	GlossaryTerm       = style("GlossaryTerm", "#000000", "#D5F5E3", "#2E7D32", "doc")
	ProjectElement     = style("ProjectElement", "#000000", "#EBDEF0", "#5C3A92", "rounded")
	CollectionMember   = style("CollectionMember", "#000000", "#FEF5E7", "#8A5A00", "rect")
	SupplyChainSegment = style("SupplyChainSegment", "#000000", "#EFEBE9", "#3E2723", "rect")
	DataField          = style("DataField", "#000000", "#ECEFF1", "#37474F", "rect")
)

// Group styles colour subgraph regions.
var (
	GroupDefault  = style("GroupDefault", "#000000", "#FBFCFC", "#ABB2B9", "")
	GroupSegment  = style("GroupSegment", "#000000", "#FDFEFE", "#3E2723", "")
	GroupCategory = style("GroupCategory", "#000000", "#F4FBF6", "#1B5E20", "")
)
