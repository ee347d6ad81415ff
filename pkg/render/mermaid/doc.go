// Package mermaid builds Mermaid flowchart text for catalog diagrams.
//
// # Overview
//
// A [Graph] is a write-once buffer for one diagram. It writes the
// frontmatter and flowchart header when created, then node, edge and
// subgraph lines as a traversal adds them:
//
//	g := mermaid.New("Orders", "G1", mermaid.LeftRight)
//	g.AddNode("G1", "Orders", "Asset", nil, styles.PrincipalAsset)
//	g.AddNode("G2", "Customer", "GlossaryTerm", nil, styles.GlossaryTerm)
//	g.AddEdge("R1", "G1", "G2", "Semantic Assignment", styles.LineNormal)
//	text := g.Finalize()
//
// GUIDs are replaced by short integer ids assigned from 1 in first-seen
// order. Node and edge emission is idempotent: a GUID gets one node and a
// relationship GUID gets one edge, whatever the traversal order. Subgraphs
// are numbered separately (g1, g2, ...), so they never take a node id.
//
// # Anchors
//
// Elements may declare an owning anchor through the Anchors classification.
// [Graph.AddElement] records these in the graph's [AnchorTracker]; at
// finalization, depending on the [AnchorMode], dotted "Anchor for" edges
// link each anchor to its elements.
//
// # Empty Diagrams
//
// A traversal that finds nothing worth drawing calls [Graph.Clear];
// [Graph.Finalize] then returns the empty string, which callers treat as
// "no diagram".
//
// # Output Grammar
//
//	---
//	title: Orders [G1]
//	---
//	flowchart LR
//	%%{init: {"flowchart": {"htmlLabels": false}} }%%
//
//	1@{ shape: rounded, label: "*Asset*
//	**Orders**" }
//	1==>|Semantic Assignment|2
//	style 1 color:#FFFFFF,fill:#004563,stroke:#004563
//
// The grammar is byte-stable: extra label properties are sorted by key and
// style directives follow emission order.
package mermaid
