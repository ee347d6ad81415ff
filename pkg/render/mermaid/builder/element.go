package builder

import (
	"github.com/odpi/mermaidgraph/pkg/catalog"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid/styles"
)

var elementDefaults = defaults{
	heading:   "Element Graph",
	direction: mermaid.LeftRight,
	anchors:   mermaid.AnchorsNone,
	principal: styles.PrincipalElement,
}

// Element renders an element and everything directly related to it.
func Element(agg *catalog.ElementGraph, opts Options) string {
	return buildElement(agg, opts).Finalize()
}

func buildElement(agg *catalog.ElementGraph, opts Options) *mermaid.Graph {
	if agg == nil {
		return empty(elementDefaults.heading)
	}
	w := begin(agg.Element, elementDefaults, opts)
	for _, rel := range agg.Related {
		w.related(agg.Element.GUID, rel, styles.VisualStyle{})
	}
	return w.done()
}

var assetDefaults = defaults{
	heading:   "Asset Graph",
	direction: mermaid.LeftRight,
	anchors:   mermaid.AnchorsExisting,
	principal: styles.PrincipalAsset,
}

// Asset renders an asset with its anchored elements and the relationships
// between them. Anchored elements sit in their own subgraph and link back
// to the asset through "Anchor for" edges.
func Asset(agg *catalog.AssetGraph, opts Options) string {
	return buildAsset(agg, opts).Finalize()
}

func buildAsset(agg *catalog.AssetGraph, opts Options) *mermaid.Graph {
	if agg == nil {
		return empty(assetDefaults.heading)
	}
	w := begin(agg.Asset, assetDefaults, opts)

	if len(agg.AnchoredElements) > 0 {
		w.g.StartGroup("Anchored Elements", styles.GroupDefault, "")
		for _, el := range agg.AnchoredElements {
			if !el.IsZero() {
				w.node(el, styles.LinkedElement)
			}
		}
		w.g.EndGroup()
	}

	for _, r := range agg.Relationships {
		w.relationship(r, styles.LinkedElement)
	}
	for _, rel := range agg.Related {
		w.related(agg.Asset.GUID, rel, styles.VisualStyle{})
	}

	if w.g.NodeCount() <= 1 {
		w.g.Clear()
	}
	return w.g
}
