package nodelink

import (
	"strings"
	"testing"

	"github.com/odpi/mermaidgraph/pkg/render/mermaid"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid/styles"
)

func testGraph() *mermaid.Graph {
	g := mermaid.New("Lineage Graph for Asset Orders", "A1", mermaid.LeftRight)
	g.AddNode("A1", "Orders", "Asset", map[string]string{"owner": "sales"}, styles.PrincipalAsset)
	g.StartGroup("Ingest", styles.GroupSegment, "")
	g.AddNode("P1", "load", "Process", nil, styles.LineageElement)
	g.EndGroup()
	g.AddEdge("R1", "P1", "A1", "Data Flow", styles.LineLongAnimated)
	g.AddEdge("", "A1", "P1", "Anchor for", styles.LineDotted)
	g.Finalize()
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testGraph(), Options{})

	for _, want := range []string{
		"digraph G {\n",
		"  rankdir=LR;\n",
		`  label="Lineage Graph for Asset Orders";`,
		`  "1" [label="Asset\nOrders", fillcolor="#004563", color="#004563", fontcolor="#FFFFFF"];`,
		`  subgraph "cluster_g1" {`,
		`    label="Ingest";`,
		`    "2" [label="Process\nload", fillcolor="#E8F4FA"`,
		`  "2" -> "1" [label="Data Flow", minlen=2, style=bold, color="#0077B6"];`,
		`  "1" -> "2" [label="Anchor for", style=dotted];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "owner") {
		t.Error("summary properties shown without Detailed")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testGraph(), Options{Detailed: true})
	if !strings.Contains(dot, `label="Asset\nOrders\nowner: sales"`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
}

func TestToDOTGroupsWithSameName(t *testing.T) {
	g := mermaid.New("Chain", "", mermaid.LeftRight)
	for _, guid := range []string{"P1", "P2"} {
		g.StartGroup("Ingest", styles.GroupSegment, "")
		g.AddNode(guid, guid, "Process", nil, styles.LineageElement)
		g.EndGroup()
	}

	dot := ToDOT(g, Options{})
	for _, want := range []string{"cluster_g1", "cluster_g2"} {
		if n := strings.Count(dot, want); n != 1 {
			t.Errorf("%s written %d times:\n%s", want, n, dot)
		}
	}
	if n := strings.Count(dot, `"1" [label=`); n != 1 {
		t.Errorf("node 1 written %d times:\n%s", n, dot)
	}
}

func TestToDOTShapes(t *testing.T) {
	g := mermaid.New("Shapes", "", mermaid.TopDown)
	g.AddNode("D1", "warehouse", "Database", nil, styles.VisualStyle{Shape: "cyl"})
	g.AddNode("D2", "plain", "Asset", nil, styles.VisualStyle{})

	dot := ToDOT(g, Options{})
	if !strings.Contains(dot, `"1" [label="Database\nwarehouse", shape=cylinder];`) {
		t.Errorf("cylinder shape missing:\n%s", dot)
	}
	if !strings.Contains(dot, `"2" [label="Asset\nplain"];`) {
		t.Errorf("plain node should use defaults:\n%s", dot)
	}
	if !strings.Contains(dot, "rankdir=TB;") {
		t.Errorf("TD should map to rankdir=TB:\n%s", dot)
	}
}

func TestEdgeAttrs(t *testing.T) {
	tests := []struct {
		line styles.LineStyle
		want string
	}{
		{styles.LineNormal, "penwidth=2"},
		{styles.LineLong, "minlen=2"},
		{styles.LineThin, "penwidth=1"},
		{styles.LineDotted, "style=dotted"},
		{styles.LineInvisible, "style=invis"},
	}

	for _, tt := range tests {
		t.Run(tt.line.String(), func(t *testing.T) {
			got := strings.Join(edgeAttrs(mermaid.Edge{Line: tt.line}), ", ")
			if got != tt.want {
				t.Errorf("edgeAttrs(%s) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.50 200.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.50 200.00" width="100" height="200"><g/></svg>`
	if out != want {
		t.Errorf("normalizeViewBox() = %q, want %q", out, want)
	}

	plain := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("normalizeViewBox() changed svg without viewBox: %q", got)
	}
}
