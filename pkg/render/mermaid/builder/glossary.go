package builder

import (
	"github.com/odpi/mermaidgraph/pkg/catalog"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid/styles"
)

var glossaryDefaults = defaults{
	heading:   "Glossary",
	direction: mermaid.TopDown,
	anchors:   mermaid.AnchorsNone,
	principal: styles.PrincipalGlossary,
}

// Glossary renders a glossary with its category tree. Terms hang off the
// categories that categorize them; the glossary's own term list adds the
// remaining terms directly under the glossary.
func Glossary(agg *catalog.Glossary, opts Options) string {
	return buildGlossary(agg, opts).Finalize()
}

func buildGlossary(agg *catalog.Glossary, opts Options) *mermaid.Graph {
	if agg == nil {
		return empty(glossaryDefaults.heading)
	}
	w := begin(agg.Glossary, glossaryDefaults, opts)

	for _, c := range agg.Categories {
		w.category(agg.Glossary.GUID, c, "CategoryAnchor")
	}
	w.relatedAll(agg.Glossary.GUID, agg.Terms, "TermAnchor", styles.GlossaryTerm)
	return w.done()
}

func (w *walker) category(parentGUID string, c catalog.CategoryTree, linkType string) {
	if !w.related(parentGUID, c.Link.Related(c.Category, linkType), styles.GlossaryCategory) {
		return
	}
	guid := c.Category.GUID
	w.relatedAll(guid, c.Terms, "TermCategorization", styles.GlossaryTerm)
	for _, sub := range c.Subcategories {
		w.category(guid, sub, "CategoryHierarchyLink")
	}
}

var termDefaults = defaults{
	heading:   "Glossary Term",
	direction: mermaid.LeftRight,
	anchors:   mermaid.AnchorsNone,
	principal: styles.PrincipalTerm,
}

// Term renders a glossary term with its glossary, categories, related
// terms and the elements it is assigned to. Each kind of neighbour sits in
// its own subgraph.
func Term(agg *catalog.GlossaryTerm, opts Options) string {
	return buildTerm(agg, opts).Finalize()
}

func buildTerm(agg *catalog.GlossaryTerm, opts Options) *mermaid.Graph {
	if agg == nil {
		return empty(termDefaults.heading)
	}
	w := begin(agg.Term, termDefaults, opts)
	guid := agg.Term.GUID

	if !agg.Glossary.IsZero() {
		anchor := catalog.Link{}.Related(agg.Glossary, "TermAnchor")
		anchor.RelatedElementAtEnd1 = true
		w.related(guid, anchor, styles.LinkedElement)
	}

	w.group("Categories", guid, agg.Categories, "TermCategorization", styles.GlossaryCategory)
	w.group("Related Terms", guid, agg.RelatedTerms, "RelatedTerm", styles.GlossaryTerm)
	w.group("Assigned Elements", guid, agg.SemanticAssignments, "SemanticAssignment", styles.LinkedElement)
	w.group("Other Related Elements", guid, agg.Other, "", styles.VisualStyle{})
	return w.done()
}
