package builder

import (
	"github.com/odpi/mermaidgraph/pkg/catalog"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid/styles"
)

var blueprintDefaults = defaults{
	heading:   "Solution Blueprint",
	direction: mermaid.TopDown,
	anchors:   mermaid.AnchorsNone,
	principal: styles.PrincipalSolution,
}

// Blueprint renders a solution blueprint with the solution components it
// is composed of, including their nested components, wires and actors.
func Blueprint(agg *catalog.SolutionBlueprint, opts Options) string {
	return buildBlueprint(agg, opts).Finalize()
}

func buildBlueprint(agg *catalog.SolutionBlueprint, opts Options) *mermaid.Graph {
	if agg == nil {
		return empty(blueprintDefaults.heading)
	}
	w := begin(agg.Blueprint, blueprintDefaults, opts)
	guid := agg.Blueprint.GUID

	for _, c := range agg.Components {
		if w.related(guid, c.Link.Related(c.Component, "SolutionBlueprintComposition"), styles.SolutionComponent) {
			w.component(c)
		}
	}
	w.relatedAll(guid, agg.Other, "", styles.VisualStyle{})
	return w.done()
}

var componentDefaults = defaults{
	heading:   "Solution Component",
	direction: mermaid.LeftRight,
	anchors:   mermaid.AnchorsNone,
	principal: styles.PrincipalSolution,
}

// Component renders a solution component with its subcomponents, the
// wires to peer components, its actors and what implements it, recursing
// through the subcomponents.
func Component(agg *catalog.SolutionComponent, opts Options) string {
	return buildComponent(agg, opts).Finalize()
}

func buildComponent(agg *catalog.SolutionComponent, opts Options) *mermaid.Graph {
	if agg == nil {
		return empty(componentDefaults.heading)
	}
	w := begin(agg.Component, componentDefaults, opts)
	w.component(*agg)
	return w.done()
}

func (w *walker) component(c catalog.SolutionComponent) {
	guid := c.Component.GUID
	for _, sub := range c.SubComponents {
		if w.related(guid, sub.Link.Related(sub.Component, "SolutionCompositionLink"), styles.SolutionComponent) {
			w.component(sub)
		}
	}
	w.relatedAll(guid, c.Wires, "SolutionLinkingWire", styles.SolutionComponent)
	w.relatedAll(guid, c.Actors, "SolutionComponentActor", styles.SolutionActor)
	w.relatedAll(guid, c.Implementations, "ImplementedBy", styles.VisualStyle{})
	w.relatedAll(guid, c.Other, "", styles.VisualStyle{})
}

var supplyChainDefaults = defaults{
	heading:   "Information Supply Chain",
	direction: mermaid.LeftRight,
	anchors:   mermaid.AnchorsNone,
	principal: styles.PrincipalSupplyChain,
}

// SupplyChain renders an information supply chain. Each segment links to
// the chain and holds the components that implement it in a subgraph;
// links between components are drawn as animated flows.
func SupplyChain(agg *catalog.InformationSupplyChain, opts Options) string {
	return buildSupplyChain(agg, opts).Finalize()
}

func buildSupplyChain(agg *catalog.InformationSupplyChain, opts Options) *mermaid.Graph {
	if agg == nil {
		return empty(supplyChainDefaults.heading)
	}
	w := begin(agg.Chain, supplyChainDefaults, opts)
	guid := agg.Chain.GUID

	for _, seg := range agg.Segments {
		w.segment(guid, seg)
	}
	for _, r := range agg.Links {
		if r.Type == "" {
			r.Type = "InformationSupplyChainLink"
		}
		w.relationship(r, styles.SolutionComponent)
	}
	w.relatedAll(guid, agg.Other, "", styles.VisualStyle{})
	return w.done()
}

func (w *walker) segment(parentGUID string, seg catalog.SupplyChainSegment) {
	if !w.related(parentGUID, seg.Link.Related(seg.Segment, "InformationSupplyChainComposition"), styles.SupplyChainSegment) {
		return
	}
	guid := seg.Segment.GUID

	if impls, actors := w.allowed(seg.Implementations), w.allowed(seg.Actors); len(impls)+len(actors) > 0 {
		w.g.StartGroup(seg.Segment.DisplayName(), styles.GroupSegment, "")
		w.relatedAll(guid, impls, "ImplementedBy", styles.SolutionComponent)
		w.relatedAll(guid, actors, "InformationSupplyChainSegmentActor", styles.SolutionActor)
		w.g.EndGroup()
	}
	for _, child := range seg.Segments {
		w.segment(guid, child)
	}
}
