package builder

import (
	"github.com/odpi/mermaidgraph/pkg/catalog"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid/styles"
)

var lineageDefaults = defaults{
	heading:   "Lineage Graph",
	direction: mermaid.LeftRight,
	anchors:   mermaid.AnchorsNone,
	principal: styles.PrincipalAsset,
}

// Lineage renders the lineage around an asset. Data flows are drawn as
// animated edges. Segments group the lineage elements they contain. A
// lineage graph without lineage edges renders nothing.
func Lineage(agg *catalog.LineageGraph, opts Options) string {
	return buildLineage(agg, opts).Finalize()
}

func buildLineage(agg *catalog.LineageGraph, opts Options) *mermaid.Graph {
	if agg == nil {
		return empty(lineageDefaults.heading)
	}
	w := begin(agg.Asset, lineageDefaults, opts)

	known := make(map[string]catalog.Element)
	for _, rels := range [][]catalog.Relationship{agg.Relationships, agg.Implementations} {
		for _, r := range rels {
			known[r.End1.GUID] = r.End1
			known[r.End2.GUID] = r.End2
		}
	}
	for _, seg := range agg.Segments {
		w.lineageSegment(seg, known)
	}

	flows := 0
	for _, r := range agg.Relationships {
		if w.relationship(r, styles.LineageElement) {
			flows++
		}
	}
	for _, r := range agg.Implementations {
		w.relationship(r, styles.LineageElement)
	}
	for _, rel := range agg.UltimateSources {
		rel = withType(rel, "UltimateSource")
		rel.RelatedElementAtEnd1 = true
		if w.related(agg.Asset.GUID, rel, styles.UltimateSource) {
			flows++
		}
	}
	for _, rel := range agg.UltimateDestinations {
		rel = withType(rel, "UltimateDestination")
		rel.RelatedElementAtEnd1 = false
		if w.related(agg.Asset.GUID, rel, styles.UltimateTarget) {
			flows++
		}
	}

	if flows == 0 {
		w.g.Clear()
	}
	return w.g
}

// lineageSegment writes a subgraph holding the segment's member elements,
// then its nested segments inside it.
func (w *walker) lineageSegment(seg catalog.LineageSegment, known map[string]catalog.Element) {
	if seg.Segment.IsZero() {
		return
	}
	w.g.StartGroup(seg.Segment.DisplayName(), styles.GroupSegment, "")
	for _, guid := range seg.Members {
		if el, ok := known[guid]; ok {
			w.node(el, styles.LineageElement)
		}
	}
	for _, child := range seg.Segments {
		w.lineageSegment(child, known)
	}
	w.g.EndGroup()
}
