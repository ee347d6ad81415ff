package builder

import (
	"github.com/odpi/mermaidgraph/pkg/catalog"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid/styles"
)

var governanceDefaults = defaults{
	heading:   "Governance Definition",
	direction: mermaid.LeftRight,
	anchors:   mermaid.AnchorsNone,
	principal: styles.PrincipalDefinition,
	extraKeys: []string{"domainIdentifier"},
}

// Governance renders a governance definition with the definitions that
// support it, its peers, the elements that implement it, its metrics and
// the elements it governs.
func Governance(agg *catalog.GovernanceDefinitionGraph, opts Options) string {
	return buildGovernance(agg, opts).Finalize()
}

func buildGovernance(agg *catalog.GovernanceDefinitionGraph, opts Options) *mermaid.Graph {
	if agg == nil {
		return empty(governanceDefaults.heading)
	}
	w := begin(agg.Definition, governanceDefaults, opts)
	guid := agg.Definition.GUID

	w.relatedAll(guid, agg.Supporting, "SupportingDefinition", styles.GovernanceElement)
	w.relatedAll(guid, agg.Peers, "GovernanceDefinitionLink", styles.GovernanceElement)
	w.relatedAll(guid, agg.Implementations, "ImplementedBy", styles.VisualStyle{})
	w.relatedAll(guid, agg.Metrics, "GovernanceDefinitionMetric", styles.GovernanceMetric)
	w.relatedAll(guid, agg.Governed, "GovernedBy", styles.LinkedElement)
	w.relatedAll(guid, agg.Other, "", styles.VisualStyle{})
	return w.done()
}
