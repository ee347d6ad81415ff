package builder

import (
	"fmt"

	"github.com/odpi/mermaidgraph/pkg/catalog"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid/styles"
)

// defaults are a builder's choices when Options leaves them open.
type defaults struct {
	heading   string
	direction mermaid.Direction
	anchors   mermaid.AnchorMode
	principal styles.VisualStyle
	extraKeys []string
}

// walker carries the graph and options through one traversal.
type walker struct {
	g         *mermaid.Graph
	opts      Options
	extraKeys []string
}

// begin starts a diagram about root and writes the root node.
func begin(root catalog.Element, d defaults, opts Options) *walker {
	title := d.heading
	if !root.IsZero() {
		title = fmt.Sprintf("%s for %s %s", d.heading, root.TypeName(), root.DisplayName())
	}
	g := mermaid.New(title, root.GUID, opts.Direction.Or(d.direction))
	g.SetAnchorMode(opts.Anchors.Or(d.anchors))

	w := &walker{g: g, opts: opts, extraKeys: d.extraKeys}
	if root.IsZero() {
		g.Clear()
		return w
	}
	g.AddElement(root, d.principal, root.Summary(d.extraKeys...))
	return w
}

// empty returns a cleared graph for a missing aggregate.
func empty(heading string) *mermaid.Graph {
	g := mermaid.New(heading, "", "")
	g.Clear()
	return g
}

// done clears the diagram when nothing but the root was linked.
func (w *walker) done() *mermaid.Graph {
	if w.g.EdgeCount() == 0 {
		w.g.Clear()
	}
	return w.g
}

func (w *walker) allows(relType string) bool {
	return w.opts.Filter.Allows(relType)
}

// allowed returns the related elements the filter lets through.
func (w *walker) allowed(rels []catalog.RelatedElement) []catalog.RelatedElement {
	var out []catalog.RelatedElement
	for _, rel := range rels {
		if !rel.Element.IsZero() && w.allows(rel.RelationshipType) {
			out = append(out, rel)
		}
	}
	return out
}

// node writes el, resolving its style from def.
func (w *walker) node(el catalog.Element, def styles.VisualStyle) {
	w.g.AddElement(el, styles.ForElement(el, def), el.Summary(w.extraKeys...))
}

// related writes the related element and the edge linking it to parentGUID.
// A zero def uses the relationship type's style. It returns false when the
// relationship is filtered out or has no element.
func (w *walker) related(parentGUID string, rel catalog.RelatedElement, def styles.VisualStyle) bool {
	if rel.Element.IsZero() || !w.allows(rel.RelationshipType) {
		return false
	}
	if def.IsZero() {
		def = styles.ForRelationship(rel.RelationshipType)
	}
	w.node(rel.Element, def)

	end1, end2 := rel.Ends(parentGUID)
	w.g.AddEdge(rel.RelationshipGUID, end1, end2,
		relationshipLabel(rel.RelationshipType, rel.RelationshipProperties),
		styles.LineFor(rel.RelationshipType))
	return true
}

// relatedAll writes every related element with the given default
// relationship type and returns how many were drawn.
func (w *walker) relatedAll(parentGUID string, rels []catalog.RelatedElement, defaultType string, def styles.VisualStyle) int {
	n := 0
	for _, rel := range rels {
		if w.related(parentGUID, withType(rel, defaultType), def) {
			n++
		}
	}
	return n
}

// relationship writes both ends of r and the edge between them. end1Def
// styles the first end; the second end uses the relationship type's style.
func (w *walker) relationship(r catalog.Relationship, end1Def styles.VisualStyle) bool {
	if r.End1.IsZero() || r.End2.IsZero() || !w.allows(r.Type) {
		return false
	}
	w.node(r.End1, end1Def)
	w.node(r.End2, styles.ForRelationship(r.Type))
	w.g.AddEdge(r.GUID, r.End1.GUID, r.End2.GUID, relationshipLabel(r.Type, r.Properties), styles.LineFor(r.Type))
	return true
}

// group draws rels inside a subgraph named heading. Nothing is written when
// the filter leaves no relationships.
func (w *walker) group(heading, parentGUID string, rels []catalog.RelatedElement, defaultType string, def styles.VisualStyle) int {
	rels = w.allowed(rels)
	if len(rels) == 0 {
		return 0
	}
	w.g.StartGroup(heading, styles.GroupDefault, "")
	n := w.relatedAll(parentGUID, rels, defaultType, def)
	w.g.EndGroup()
	return n
}

// withType fills in the relationship type when the aggregate left it out.
func withType(rel catalog.RelatedElement, defaultType string) catalog.RelatedElement {
	if rel.RelationshipType == "" {
		rel.RelationshipType = defaultType
	}
	return rel
}
