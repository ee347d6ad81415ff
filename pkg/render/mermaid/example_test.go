package mermaid_test

import (
	"fmt"

	"github.com/odpi/mermaidgraph/pkg/render/mermaid"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid/styles"
)

func ExampleGraph() {
	g := mermaid.New("Orders", "G1", mermaid.LeftRight)
	g.AddNode("G1", "Orders", "Asset", nil, styles.PrincipalAsset)
	g.AddNode("G2", "Customer", "GlossaryTerm", nil, styles.GlossaryTerm)
	g.AddEdge("R1", "G1", "G2", "Semantic Assignment", styles.LineNormal)

	fmt.Print(g.Finalize())
	// Output:
	// ---
	// title: Orders [G1]
	// ---
	// flowchart LR
	// %%{init: {"flowchart": {"htmlLabels": false}} }%%
	//
	// 1@{ shape: rounded, label: "*Asset*
	// **Orders**" }
	// 2@{ shape: doc, label: "*GlossaryTerm*
	// **Customer**" }
	// 1==>|Semantic Assignment|2
	// style 1 color:#FFFFFF,fill:#004563,stroke:#004563
	// style 2 color:#000000,fill:#D5F5E3,stroke:#2E7D32
}

func ExampleGraph_Clear() {
	g := mermaid.New("Lonely", "G1", mermaid.TopDown)
	g.AddNode("G1", "Lonely", "Asset", nil, styles.PrincipalAsset)
	if g.EdgeCount() == 0 {
		g.Clear()
	}
	fmt.Printf("%q\n", g.Finalize())
	// Output: ""
}
