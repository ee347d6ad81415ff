// Package builder draws catalog aggregates as Mermaid diagrams.
//
// There is one builder per diagram kind. Each is a plain function from an
// aggregate to diagram text that owns a fresh [mermaid.Graph]:
//
//	text := builder.Element(agg, builder.Options{})
//
// All builders share one traversal shape: a titled header, the root
// element drawn in a principal style, then each category of related
// elements (nodes plus edges, subject to the relationship filter), recursing
// through hierarchical aggregates, and finally anchor links. A builder that
// finds nothing to link to the root returns the empty string.
//
// # Kinds
//
// [Lookup] and [Kinds] expose the builders as a table keyed by kind name,
// each paired with a decoder for its aggregate, so callers holding raw JSON
// can dispatch without knowing the aggregate types:
//
//	k, err := builder.Lookup("lineage")
//	text, err := k.Render(doc.Aggregate, opts)
//
// # Labels
//
// Edge labels come from the relationship's "label" property, then from its
// position and cardinality ("[1] 0..*"), then from the relationship type
// name spaced into words ("Semantic Assignment").
package builder
