package builder

import (
	"strings"
	"testing"

	"github.com/odpi/mermaidgraph/pkg/catalog"
)

func el(guid, typeName, name string, classifications ...string) catalog.Element {
	e := catalog.Element{
		GUID:       guid,
		Type:       catalog.ElementType{TypeName: typeName},
		Properties: catalog.Properties{catalog.PropDisplayName: name},
	}
	for _, c := range classifications {
		e.Classifications = append(e.Classifications, catalog.Classification{Name: c})
	}
	return e
}

func rel(relGUID, relType string, e catalog.Element) catalog.RelatedElement {
	return catalog.RelatedElement{RelationshipGUID: relGUID, RelationshipType: relType, Element: e}
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func edgeLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "==>") || strings.Contains(line, "-->") ||
			strings.Contains(line, "-.->") || strings.Contains(line, "~~~") {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestElementScenario(t *testing.T) {
	agg := &catalog.ElementGraph{
		Element: el("G1", "Asset", "Orders"),
		Related: []catalog.RelatedElement{
			rel("R1", "SemanticAssignment", el("G2", "GlossaryTerm", "Customer")),
		},
	}

	out := Element(agg, Options{})

	if n := strings.Count(out, "@{ shape:"); n != 2 {
		t.Errorf("node declarations = %d, want 2", n)
	}
	assertContains(t, out,
		"title: Element Graph for Asset Orders [G1]",
		"1@{ shape: rounded, label: \"*Asset*\n**Orders**\" }",
		"2@{ shape: doc, label: \"*GlossaryTerm*\n**Customer**\" }",
	)
	edges := edgeLines(out)
	if len(edges) != 1 || edges[0] != "1==>|Semantic Assignment|2" {
		t.Errorf("edges = %q, want [1==>|Semantic Assignment|2]", edges)
	}
}

func TestElementDuplicateRelationship(t *testing.T) {
	agg := &catalog.ElementGraph{
		Element: el("G1", "Asset", "Orders"),
		Related: []catalog.RelatedElement{
			rel("R1", "SemanticAssignment", el("G2", "GlossaryTerm", "Customer")),
			rel("R1", "SemanticAssignment", el("G2", "GlossaryTerm", "Customer")),
		},
	}

	out := Element(agg, Options{})
	if n := strings.Count(out, "|Semantic Assignment|"); n != 1 {
		t.Errorf("R1 edges = %d, want 1:\n%s", n, out)
	}
	if n := strings.Count(out, "@{ shape:"); n != 2 {
		t.Errorf("node declarations = %d, want 2", n)
	}
}

func TestElementClearOnEmpty(t *testing.T) {
	tests := []struct {
		name string
		agg  *catalog.ElementGraph
	}{
		{"no related", &catalog.ElementGraph{Element: el("G1", "Asset", "Orders")}},
		{"nil aggregate", nil},
		{"missing root", &catalog.ElementGraph{}},
		{"related without element", &catalog.ElementGraph{
			Element: el("G1", "Asset", "Orders"),
			Related: []catalog.RelatedElement{{RelationshipGUID: "R1", RelationshipType: "SemanticAssignment"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := Element(tt.agg, Options{}); out != "" {
				t.Errorf("Element() = %q, want empty", out)
			}
		})
	}
}

func TestElementRelatedAtEnd1(t *testing.T) {
	r := rel("R1", "SourcedFrom", el("G2", "DataFile", "orders.csv"))
	r.RelatedElementAtEnd1 = true
	agg := &catalog.ElementGraph{Element: el("G1", "Asset", "Orders"), Related: []catalog.RelatedElement{r}}

	assertContains(t, Element(agg, Options{}), "2==>|Sourced From|1")
}

func TestElementMementoStyle(t *testing.T) {
	agg := &catalog.ElementGraph{
		Element: el("G1", "Asset", "Orders"),
		Related: []catalog.RelatedElement{
			rel("R1", "DataContentForDataSet", el("G2", "DataFile", "old.csv", "Memento")),
		},
	}

	assertContains(t, Element(agg, Options{}),
		"2@{ shape: odd,",
		"style 2 color:#FFFFFF,fill:#5D6D7E,stroke:#2C3E50",
	)
}

func TestElementFilter(t *testing.T) {
	agg := &catalog.ElementGraph{
		Element: el("G1", "Asset", "Orders"),
		Related: []catalog.RelatedElement{
			rel("R1", "SemanticAssignment", el("G2", "GlossaryTerm", "Customer")),
			rel("R2", "ResourceList", el("G3", "Collection", "Favourites")),
		},
	}
	opts, err := ParseOptions("", "", nil, []string{"Semantic*"})
	if err != nil {
		t.Fatalf("ParseOptions: %v", err)
	}

	out := Element(agg, opts)
	if strings.Contains(out, "Customer") {
		t.Errorf("filtered element drawn:\n%s", out)
	}
	assertContains(t, out, "1==>|Resource List|2")

	opts, _ = ParseOptions("", "", []string{"Nothing*"}, nil)
	if out := Element(agg, opts); out != "" {
		t.Errorf("fully filtered diagram = %q, want empty", out)
	}
}

func TestElementLabelFromProperties(t *testing.T) {
	r := rel("R1", "SemanticAssignment", el("G2", "GlossaryTerm", "Customer"))
	r.RelationshipProperties = catalog.Properties{"label": "defines"}
	agg := &catalog.ElementGraph{Element: el("G1", "Asset", "Orders"), Related: []catalog.RelatedElement{r}}

	assertContains(t, Element(agg, Options{}), "1==>|defines|2")
}

func TestElementDirectionOption(t *testing.T) {
	agg := &catalog.ElementGraph{
		Element: el("G1", "Asset", "Orders"),
		Related: []catalog.RelatedElement{rel("R1", "SemanticAssignment", el("G2", "GlossaryTerm", "Customer"))},
	}
	assertContains(t, Element(agg, Options{}), "flowchart LR\n")

	opts, _ := ParseOptions("td", "", nil, nil)
	assertContains(t, Element(agg, opts), "flowchart TD\n")
}

func anchoredTo(e catalog.Element, anchorGUID string) catalog.Element {
	e.Classifications = append(e.Classifications, catalog.Classification{
		Name:       catalog.ClassificationAnchors,
		Properties: catalog.Properties{catalog.PropAnchorGUID: anchorGUID, catalog.PropAnchorTypeName: "Asset"},
	})
	return e
}

func TestAsset(t *testing.T) {
	schema := anchoredTo(el("S1", "SchemaType", "orders schema"), "A1")
	agg := &catalog.AssetGraph{
		Asset:            el("A1", "Asset", "Orders"),
		AnchoredElements: []catalog.Element{schema},
		Relationships: []catalog.Relationship{
			{GUID: "R1", Type: "AssetSchemaType", End1: el("A1", "Asset", "Orders"), End2: schema},
		},
	}

	out := Asset(agg, Options{})
	assertContains(t, out,
		"subgraph g1 [Anchored Elements]\n2@{ shape: rect, label: \"*SchemaType*\n**orders schema**\" }\nend\n",
		"1==>|Asset Schema Type|2\n",
		"1-.->|Anchor for|2\n",
	)

	opts, _ := ParseOptions("", "none", nil, nil)
	if strings.Contains(Asset(agg, opts), "Anchor for") {
		t.Error("anchor links drawn with anchors=none")
	}

	if out := Asset(&catalog.AssetGraph{Asset: el("A1", "Asset", "Orders")}, Options{}); out != "" {
		t.Errorf("empty asset = %q, want empty", out)
	}
}

func TestLineage(t *testing.T) {
	asset := el("A1", "Asset", "Orders")
	load := el("P1", "Process", "load")
	extract := el("P0", "Process", "extract")
	agg := &catalog.LineageGraph{
		Asset: asset,
		Relationships: []catalog.Relationship{
			{GUID: "R1", Type: "DataFlow", End1: load, End2: asset},
			{GUID: "R2", Type: "ControlFlow", End1: extract, End2: load},
		},
		Segments: []catalog.LineageSegment{
			{Segment: el("SEG", "InformationSupplyChainSegment", "Ingest"), Members: []string{"P1"}},
		},
	}

	out := Lineage(agg, Options{})
	assertContains(t, out,
		"subgraph g1 [Ingest]\n2@{ shape: fr-rect, label: \"*Process*\n**load**\" }\nend\n",
		"2 e1@---->|Data Flow|1\n",
		"3---->|Control Flow|2\n",
		"e1@{ animation: fast }\n",
	)
}

func TestLineageUltimates(t *testing.T) {
	agg := &catalog.LineageGraph{
		Asset:                el("A1", "Asset", "Orders"),
		UltimateSources:      []catalog.RelatedElement{rel("", "", el("S1", "DataFile", "raw.csv"))},
		UltimateDestinations: []catalog.RelatedElement{rel("", "", el("D1", "Database", "warehouse"))},
	}

	assertContains(t, Lineage(agg, Options{}),
		"2---->|Ultimate Source|1\n",
		"1---->|Ultimate Destination|3\n",
		"2@{ shape: doc,",
		"3@{ shape: cyl,",
	)
}

func TestLineageClearWithoutFlows(t *testing.T) {
	agg := &catalog.LineageGraph{
		Asset: el("A1", "Asset", "Orders"),
		Implementations: []catalog.Relationship{
			{GUID: "R1", Type: "ImplementedBy", End1: el("A1", "Asset", "Orders"), End2: el("C1", "SolutionComponent", "loader")},
		},
	}
	if out := Lineage(agg, Options{}); out != "" {
		t.Errorf("Lineage() without flows = %q, want empty", out)
	}
}

func TestGlossary(t *testing.T) {
	agg := &catalog.Glossary{
		Glossary: el("GL", "Glossary", "Sales"),
		Categories: []catalog.CategoryTree{{
			Category:      el("C1", "GlossaryCategory", "Customers"),
			Terms:         []catalog.RelatedElement{rel("", "", el("T1", "GlossaryTerm", "Customer"))},
			Subcategories: []catalog.CategoryTree{{Category: el("C2", "GlossaryCategory", "Prospects")}},
		}},
		Terms: []catalog.RelatedElement{rel("", "", el("T2", "GlossaryTerm", "Order"))},
	}

	out := Glossary(agg, Options{})
	edges := edgeLines(out)
	want := []string{
		"1==>|Category Anchor|2",
		"2==>|Term Categorization|3",
		"2==>|Category Hierarchy Link|4",
		"1==>|Term Anchor|5",
	}
	if strings.Join(edges, ";") != strings.Join(want, ";") {
		t.Errorf("edges = %q, want %q", edges, want)
	}
	assertContains(t, out, "flowchart TD\n", "2@{ shape: tag-rect,")
}

func TestTerm(t *testing.T) {
	agg := &catalog.GlossaryTerm{
		Term:         el("T1", "GlossaryTerm", "Customer"),
		Glossary:     el("GL", "Glossary", "Sales"),
		RelatedTerms: []catalog.RelatedElement{rel("R1", "Synonym", el("T2", "GlossaryTerm", "Client"))},
		SemanticAssignments: []catalog.RelatedElement{
			rel("R2", "", el("A1", "DataSet", "customers")),
		},
	}

	assertContains(t, Term(agg, Options{}),
		"2==>|Term Anchor|1\n",
		"subgraph g1 [Related Terms]\n3@{",
		"1==>|Synonym|3\n",
		"subgraph g2 [Assigned Elements]\n4@{ shape: lin-rect,",
		"1==>|Semantic Assignment|4\n",
	)
}

func TestProjectRecursion(t *testing.T) {
	agg := &catalog.ProjectHierarchy{
		Project: el("P1", "Project", "Migration"),
		Team:    []catalog.RelatedElement{rel("", "", el("U1", "PersonRole", "Lead"))},
		Children: []catalog.ProjectHierarchy{{
			Project:  el("P2", "Project", "Phase 1"),
			Children: []catalog.ProjectHierarchy{{Project: el("P3", "Project", "Discovery")}},
		}},
	}

	edges := edgeLines(Project(agg, Options{}))
	want := []string{
		"1==>|Project Team|2",
		"1==>|Project Hierarchy|3",
		"3==>|Project Hierarchy|4",
	}
	if strings.Join(edges, ";") != strings.Join(want, ";") {
		t.Errorf("edges = %q, want %q", edges, want)
	}
}

func TestProjectFilterStopsRecursion(t *testing.T) {
	agg := &catalog.ProjectHierarchy{
		Project: el("P1", "Project", "Migration"),
		Team:    []catalog.RelatedElement{rel("", "", el("U1", "PersonRole", "Lead"))},
		Children: []catalog.ProjectHierarchy{{
			Project:  el("P2", "Project", "Phase 1"),
			Children: []catalog.ProjectHierarchy{{Project: el("P3", "Project", "Discovery")}},
		}},
	}
	opts, _ := ParseOptions("", "", nil, []string{"ProjectHierarchy"})

	out := Project(agg, opts)
	if strings.Contains(out, "Phase 1") || strings.Contains(out, "Discovery") {
		t.Errorf("filtered children drawn:\n%s", out)
	}
}

func TestCollectionClassificationStyles(t *testing.T) {
	agg := &catalog.CollectionHierarchy{
		Collection: el("C1", "Collection", "Home"),
		Members:    []catalog.RelatedElement{rel("", "", el("A1", "DataFile", "notes.txt"))},
		Children: []catalog.CollectionHierarchy{{
			Collection: el("C2", "Collection", "Reports", "Folder"),
			Members:    []catalog.RelatedElement{rel("", "", el("A2", "DataFile", "q1.pdf"))},
		}},
	}

	assertContains(t, Collection(agg, Options{}),
		"1==>|Collection Membership|2\n",
		"1==>|Collection Membership|3\n",
		"3==>|Collection Membership|4\n",
		"3@{ shape: docs,",
		"style 3 color:#000000,fill:#FFE0B2,stroke:#E65100",
	)
}

func TestGovernance(t *testing.T) {
	agg := &catalog.GovernanceDefinitionGraph{
		Definition:      el("D1", "GovernancePolicy", "Retain records"),
		Supporting:      []catalog.RelatedElement{rel("", "", el("D2", "GovernanceDriver", "Regulation"))},
		Implementations: []catalog.RelatedElement{rel("", "", el("C1", "SolutionComponent", "Archiver"))},
		Metrics:         []catalog.RelatedElement{rel("", "", el("M1", "GovernanceMetric", "Retention rate"))},
	}

	assertContains(t, Governance(agg, Options{}),
		"1==>|Supporting Definition|2\n",
		"2@{ shape: trap-t,",
		"1-.->|Implemented By|3\n",
		"1==>|Governance Definition Metric|4\n",
		"4@{ shape: dbl-circ,",
	)
}

func TestBlueprintAndComponent(t *testing.T) {
	actor := rel("", "", el("R1", "ActorRole", "Operator"))
	actor.RelatedElementAtEnd1 = true
	comp := catalog.SolutionComponent{
		Component: el("C1", "SolutionComponent", "Ingest"),
		SubComponents: []catalog.SolutionComponent{
			{Component: el("C2", "SolutionComponent", "Parser")},
		},
		Wires:  []catalog.RelatedElement{rel("W1", "", el("C3", "SolutionComponent", "Store"))},
		Actors: []catalog.RelatedElement{actor},
	}

	out := Blueprint(&catalog.SolutionBlueprint{
		Blueprint:  el("B1", "SolutionBlueprint", "Pipeline"),
		Components: []catalog.SolutionComponent{comp},
	}, Options{})
	assertContains(t, out,
		"1==>|Solution Blueprint Composition|2\n",
		"2==>|Solution Composition Link|3\n",
		"2-->|Solution Linking Wire|4\n",
		"5==>|Solution Component Actor|2\n",
	)

	out = Component(&comp, Options{})
	assertContains(t, out,
		"title: Solution Component for SolutionComponent Ingest [C1]",
		"1==>|Solution Composition Link|2\n",
		"1-->|Solution Linking Wire|3\n",
	)
}

func TestSupplyChain(t *testing.T) {
	sc1 := el("SC1", "SolutionComponent", "Extractor")
	agg := &catalog.InformationSupplyChain{
		Chain: el("ISC", "InformationSupplyChain", "Customer data"),
		Segments: []catalog.SupplyChainSegment{{
			Segment:         el("S1", "InformationSupplyChainSegment", "Collect"),
			Implementations: []catalog.RelatedElement{rel("", "", sc1)},
		}},
		Links: []catalog.Relationship{
			{GUID: "L1", End1: sc1, End2: el("SC2", "SolutionComponent", "Loader")},
		},
	}

	assertContains(t, SupplyChain(agg, Options{}),
		"1==>|Information Supply Chain Composition|2\n",
		"subgraph g1 [Collect]\n3@{",
		"2-.->|Implemented By|3\nend\n",
		"3 e1@---->|Information Supply Chain Link|4\n",
		"e1@{ animation: fast }",
	)
}

func TestSupplyChainSegmentsSharingAName(t *testing.T) {
	segment := func(guid, implGUID string) catalog.SupplyChainSegment {
		return catalog.SupplyChainSegment{
			Segment:         el(guid, "InformationSupplyChainSegment", "Ingest"),
			Implementations: []catalog.RelatedElement{rel("", "", el(implGUID, "SolutionComponent", "Loader "+implGUID))},
		}
	}
	agg := &catalog.InformationSupplyChain{
		Chain:    el("ISC", "InformationSupplyChain", "Customer data"),
		Segments: []catalog.SupplyChainSegment{segment("S1", "C1"), segment("S2", "C2")},
	}

	out := SupplyChain(agg, Options{})
	assertContains(t, out,
		"subgraph g1 [Ingest]\n3@{",
		"subgraph g2 [Ingest]\n5@{",
		"2-.->|Implemented By|3\nend\n",
		"4-.->|Implemented By|5\nend\n",
	)
	for _, prefix := range []string{"subgraph g1 ", "subgraph g2 ", "style g1 ", "style g2 "} {
		if n := strings.Count(out, "\n"+prefix); n != 1 {
			t.Errorf("%q appears %d times, want 1:\n%s", prefix, n, out)
		}
	}
}

func TestDataStructureCardinality(t *testing.T) {
	field := func(guid, name string, pos, minCard, maxCard int) catalog.DataField {
		f := catalog.DataField{
			Field: el(guid, "DataField", name),
			Link: catalog.Link{RelationshipProperties: catalog.Properties{
				catalog.PropPosition: pos,
				catalog.PropMinCard:  minCard,
				catalog.PropMaxCard:  maxCard,
			}},
		}
		f.Field.Properties["dataType"] = "string"
		return f
	}

	addresses := field("F2", "addresses", 2, 0, -1)
	addresses.Fields = []catalog.DataField{field("F3", "street", 1, 0, 1)}
	agg := &catalog.DataStructure{
		Structure: el("S1", "DataStructure", "Customer record"),
		Fields:    []catalog.DataField{field("F1", "id", 1, 1, 1), addresses},
	}

	out := DataStructure(agg, Options{})
	edges := edgeLines(out)
	want := []string{"1==>|[1] 1..1|2", "1==>|[2] 0..*|3", "3==>|[1] 0..1|4"}
	if strings.Join(edges, ";") != strings.Join(want, ";") {
		t.Errorf("edges = %q, want %q", edges, want)
	}
	assertContains(t, out, "**id**\ndataType: string\" }")
}
