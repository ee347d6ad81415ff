package builder

import (
	"strings"
	"unicode"

	"github.com/odpi/mermaidgraph/pkg/catalog"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid/styles"
)

// relationshipLabel picks an edge label from the relationship properties:
// an explicit label, then a cardinality label for data fields, then the
// spaced-out relationship type name.
func relationshipLabel(relType string, props catalog.Properties) string {
	if s := props.String(catalog.PropLabel); s != "" {
		return s
	}
	if props.Has(catalog.PropMinCard) || props.Has(catalog.PropMaxCard) {
		pos, _ := props.Int(catalog.PropPosition)
		minCard, ok := props.Int(catalog.PropMinCard)
		if !ok {
			minCard = 0
		}
		maxCard, ok := props.Int(catalog.PropMaxCard)
		if !ok {
			maxCard = -1
		}
		return styles.CardinalityLabel(pos, minCard, maxCard)
	}
	return SpaceOut(relType)
}

// SpaceOut turns a type name into words: "SemanticAssignment" becomes
// "Semantic Assignment" and "DeployedAPIEndpoint" becomes
// "Deployed API Endpoint". Underscores become spaces.
func SpaceOut(name string) string {
	runes := []rune(strings.ReplaceAll(name, "_", " "))
	var b strings.Builder
	b.Grow(len(runes) + 4)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
