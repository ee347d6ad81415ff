package mermaid

import (
	"strconv"
	"strings"
	"testing"

	"github.com/odpi/mermaidgraph/pkg/render/mermaid/styles"
)

func countLines(text, prefix string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}

func TestGraphHeader(t *testing.T) {
	tests := []struct {
		name  string
		title string
		guid  string
		dir   Direction
		want  string
	}{
		{"with guid", "Orders", "G1", LeftRight, "---\ntitle: Orders [G1]\n---\nflowchart LR\n" + initDirective + "\n\n"},
		{"without guid", "Orders", "", "", "---\ntitle: Orders\n---\nflowchart TD\n" + initDirective + "\n\n"},
		{"sanitized title", `The "big" one`, "G1", RightLeft, "---\ntitle: The 'big' one [G1]\n---\nflowchart RL\n" + initDirective + "\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.title, tt.guid, tt.dir)
			if got := g.Finalize(); got != tt.want {
				t.Errorf("Finalize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddNodeIdempotent(t *testing.T) {
	g := New("t", "G1", TopDown)

	if !g.AddNode("G1", "First", "Asset", nil, styles.PrincipalAsset) {
		t.Fatal("first AddNode returned false")
	}
	if g.AddNode("G1", "Second", "Process", map[string]string{"k": "v"}, styles.LinkedElement) {
		t.Fatal("duplicate AddNode returned true")
	}

	out := g.Finalize()
	if strings.Contains(out, "Second") || strings.Contains(out, "Process") {
		t.Errorf("duplicate node leaked into output:\n%s", out)
	}
	if n := strings.Count(out, "@{ shape:"); n != 1 {
		t.Errorf("node declarations = %d, want 1", n)
	}
	if n := countLines(out, "style 1 "); n != 1 {
		t.Errorf("style lines for node 1 = %d, want 1", n)
	}
	if !strings.Contains(out, "style 1 "+styles.PrincipalAsset.Directive()) {
		t.Errorf("first style should win:\n%s", out)
	}
}

func TestAddNodeLabel(t *testing.T) {
	g := New("t", "", TopDown)
	g.AddNode("G1", "Orders", "Asset", map[string]string{"zone": "gold", "owner": "sales"}, styles.VisualStyle{})

	want := "1@{ shape: rect, label: \"*Asset*\n**Orders**\nowner: sales\nzone: gold\" }\n"
	out := g.Finalize()
	if !strings.Contains(out, want) {
		t.Errorf("output missing %q:\n%s", want, out)
	}
	if strings.Contains(out, "style 1") {
		t.Errorf("zero style should not produce a directive:\n%s", out)
	}
}

func TestAddNodeSanitizes(t *testing.T) {
	g := New("t", "", TopDown)
	g.AddNode("G1", `say "hi" to http://host///x`, "Asset", nil, styles.VisualStyle{})

	out := g.Finalize()
	line := strings.SplitN(out[strings.Index(out, "1@{"):], "\" }", 2)[0]
	name := line[strings.Index(line, "**")+2:]
	if strings.Contains(name, `"`) {
		t.Errorf("name contains raw double quote: %q", name)
	}
	if strings.Contains(name, "//") {
		t.Errorf("name contains //: %q", name)
	}
	if !strings.Contains(name, "say 'hi' to http:/ /host/ / /x") {
		t.Errorf("unexpected sanitized name: %q", name)
	}
}

func TestAddNodeEmptyGUID(t *testing.T) {
	g := New("t", "", TopDown)
	if g.AddNode("", "nothing", "Asset", nil, styles.LinkedElement) {
		t.Error("AddNode with empty guid returned true")
	}
	if g.NodeCount() != 0 {
		t.Errorf("NodeCount() = %d, want 0", g.NodeCount())
	}
}

func TestIDStability(t *testing.T) {
	g := New("t", "", TopDown)

	ids := []string{g.ID("a"), g.ID("b"), g.ID("a"), g.ID("c"), g.ID("b")}
	want := []string{"1", "2", "1", "3", "2"}
	for i := range ids {
		if ids[i] != want[i] {
			t.Errorf("ID call %d = %s, want %s", i, ids[i], want[i])
		}
	}

	g.AddNode("c", "C", "Asset", nil, styles.VisualStyle{})
	if n, _ := g.Node("c"); n.ID != "3" {
		t.Errorf("node id = %s, want 3", n.ID)
	}
}

func TestAddEdgeAtMostOnce(t *testing.T) {
	g := New("t", "G1", TopDown)
	g.AddNode("G1", "root", "Asset", nil, styles.PrincipalAsset)
	g.AddNode("G2", "term", "GlossaryTerm", nil, styles.GlossaryTerm)

	g.AddEdge("R1", "G1", "G2", "Semantic Assignment", styles.LineNormal)
	g.AddEdge("R1", "G1", "G2", "Semantic Assignment", styles.LineNormal)
	g.AddEdge("R1", "G2", "G1", "other", styles.LineThin)

	out := g.Finalize()
	if n := strings.Count(out, "1==>|Semantic Assignment|2"); n != 1 {
		t.Errorf("edge lines = %d, want 1:\n%s", n, out)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestAddEdgeWithoutRelationshipNotDeduplicated(t *testing.T) {
	g := New("t", "", TopDown)
	g.AddEdge("", "a", "b", "x", styles.LineThin)
	g.AddEdge("", "a", "b", "x", styles.LineThin)

	out := g.Finalize()
	if n := strings.Count(out, "1-->|x|2\n"); n != 2 {
		t.Errorf("edge lines = %d, want 2:\n%s", n, out)
	}
}

func TestAddEdgeMissingEnd(t *testing.T) {
	g := New("t", "", TopDown)
	g.AddEdge("R1", "", "b", "x", styles.LineThin)
	g.AddEdge("R2", "a", "", "x", styles.LineThin)
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
}

func TestEdgeGlyphs(t *testing.T) {
	tests := []struct {
		line styles.LineStyle
		want string
	}{
		{styles.LineNormal, "1==>|lbl|2\n"},
		{styles.LineLong, "1---->|lbl|2\n"},
		{styles.LineThin, "1-->|lbl|2\n"},
		{styles.LineDotted, "1-.->|lbl|2\n"},
		{styles.LineInvisible, "1~~~2\n"},
		{styles.LineLongAnimated, "1 e1@---->|lbl|2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.line.String(), func(t *testing.T) {
			g := New("t", "", TopDown)
			g.AddEdge("R1", "a", "b", "lbl", tt.line)
			out := g.Finalize()
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestEdgeWithoutLabel(t *testing.T) {
	g := New("t", "", TopDown)
	g.AddEdge("", "a", "b", "", styles.LineNormal)
	if out := g.Finalize(); !strings.Contains(out, "1==>2\n") {
		t.Errorf("unlabelled edge missing:\n%s", out)
	}
}

func TestEdgeLabelSanitized(t *testing.T) {
	g := New("t", "", TopDown)
	g.AddEdge("", "a", "b", `a|b "c" //d`, styles.LineNormal)
	if out := g.Finalize(); !strings.Contains(out, "|a b 'c' / /d|") {
		t.Errorf("label not sanitized:\n%s", out)
	}
}

func TestAnimatedEdges(t *testing.T) {
	g := New("t", "", TopDown)
	g.AddEdge("R1", "a", "b", "flow", styles.LineLongAnimated)
	g.AddEdge("R2", "b", "c", "call", styles.LineThin)
	g.AddEdge("R3", "b", "c", "flow", styles.LineLongAnimated)

	out := g.Finalize()
	for _, want := range []string{
		"1 e1@---->|flow|2\n",
		"2 e2@---->|flow|3\n",
		"e1@{ animation: fast }\ne2@{ animation: fast }\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	edges := g.Edges()
	if edges[0].ID != "e1" || edges[1].ID != "" || edges[2].ID != "e2" {
		t.Errorf("edge ids = %q %q %q", edges[0].ID, edges[1].ID, edges[2].ID)
	}
}

func TestGroups(t *testing.T) {
	g := New("t", "", TopDown)
	g.StartGroup("Segment A", styles.GroupSegment, LeftRight)
	g.AddNode("n1", "one", "Process", nil, styles.VisualStyle{})
	g.StartGroup("Inner", styles.VisualStyle{}, "")
	g.AddNode("n2", "two", "Process", nil, styles.VisualStyle{})
	g.EndGroup()
	g.EndGroup()
	g.AddNode("n3", "three", "Process", nil, styles.VisualStyle{})

	out := g.Finalize()
	for _, want := range []string{
		"subgraph g1 [Segment A]\ndirection LR\n1@{",
		"subgraph g2 [Inner]\n2@{",
		"end\nend\n3@{",
		"style g1 " + styles.GroupSegment.Directive(),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "style g2 ") {
		t.Error("zero-style group should have no style directive")
	}

	groups := g.Groups()
	if len(groups) != 2 || groups[1].Parent != "g1" {
		t.Errorf("groups = %+v", groups)
	}
	n2, _ := g.Node("n2")
	n3, _ := g.Node("n3")
	if n2.Group != "g2" || n3.Group != "" {
		t.Errorf("node groups = %q, %q", n2.Group, n3.Group)
	}
}

func TestGroupsWithSameName(t *testing.T) {
	g := New("t", "", TopDown)
	for _, guid := range []string{"n1", "n2"} {
		g.StartGroup("Ingest", styles.GroupSegment, "")
		g.AddNode(guid, guid, "Process", nil, styles.VisualStyle{})
		g.StartGroup("Ingest", styles.VisualStyle{}, "")
		g.EndGroup()
		g.EndGroup()
	}

	out := g.Finalize()
	for _, id := range []string{"g1", "g2", "g3", "g4"} {
		if n := countLines(out, "subgraph "+id+" [Ingest]"); n != 1 {
			t.Errorf("subgraph %s written %d times:\n%s", id, n, out)
		}
	}
	if countLines(out, "style g1 ") != 1 || countLines(out, "style g3 ") != 1 {
		t.Errorf("each styled group needs one style line:\n%s", out)
	}

	groups := g.Groups()
	if len(groups) != 4 || groups[1].Parent != "g1" || groups[3].Parent != "g3" {
		t.Errorf("groups = %+v", groups)
	}
	n2, _ := g.Node("n2")
	if n2.Group != "g3" {
		t.Errorf("n2 group = %q, want g3", n2.Group)
	}
}

func TestNodeIDsContiguousAcrossGroups(t *testing.T) {
	g := New("t", "", TopDown)
	g.AddNode("n1", "one", "Process", nil, styles.VisualStyle{})
	g.StartGroup("A", styles.VisualStyle{}, "")
	g.AddNode("n2", "two", "Process", nil, styles.VisualStyle{})
	g.EndGroup()
	g.StartGroup("B", styles.VisualStyle{}, "")
	g.EndGroup()
	g.AddNode("n3", "three", "Process", nil, styles.VisualStyle{})

	for i, guid := range []string{"n1", "n2", "n3"} {
		if got, want := g.ID(guid), strconv.Itoa(i+1); got != want {
			t.Errorf("ID(%s) = %s, want %s", guid, got, want)
		}
	}
}

func TestFinalizeClosesOpenGroups(t *testing.T) {
	g := New("t", "", TopDown)
	g.StartGroup("open", styles.VisualStyle{}, "")
	g.AddNode("n1", "one", "Process", nil, styles.VisualStyle{})
	out := g.Finalize()
	if !strings.HasSuffix(out, "end\n") {
		t.Errorf("open group not closed:\n%s", out)
	}
}

func TestClear(t *testing.T) {
	g := New("t", "G1", TopDown)
	g.AddNode("G1", "root", "Asset", nil, styles.PrincipalAsset)
	g.Clear()
	if !g.Cleared() {
		t.Error("Cleared() = false after Clear")
	}
	if out := g.Finalize(); out != "" {
		t.Errorf("Finalize() after Clear = %q, want empty", out)
	}
}

func TestFinalizeIdempotent(t *testing.T) {
	g := New("t", "G1", TopDown)
	g.AddNode("G1", "root", "Asset", nil, styles.PrincipalAsset)
	first := g.Finalize()

	g.AddNode("G2", "late", "Asset", nil, styles.LinkedElement)
	g.AddEdge("R1", "G1", "G2", "x", styles.LineNormal)
	if second := g.Finalize(); second != first {
		t.Errorf("second Finalize differs:\n%s\nvs\n%s", first, second)
	}
	if g.NodeCount() != 1 || g.EdgeCount() != 0 {
		t.Errorf("graph mutated after Finalize: nodes=%d edges=%d", g.NodeCount(), g.EdgeCount())
	}
}

func TestStyleDirectivesInEmissionOrder(t *testing.T) {
	g := New("t", "", TopDown)
	g.AddNode("b", "B", "Asset", nil, styles.LinkedElement)
	g.AddNode("a", "A", "Asset", nil, styles.PrincipalAsset)

	out := g.Finalize()
	i1 := strings.Index(out, "style 1 ")
	i2 := strings.Index(out, "style 2 ")
	if i1 < 0 || i2 < 0 || i1 > i2 {
		t.Errorf("style directives out of order:\n%s", out)
	}
}
