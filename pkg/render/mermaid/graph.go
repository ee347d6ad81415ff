package mermaid

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/odpi/mermaidgraph/pkg/catalog"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid/styles"
)

const initDirective = `%%{init: {"flowchart": {"htmlLabels": false}} }%%`

// Node is a node written to the diagram.
type Node struct {
	ID       string // Short display id
	GUID     string
	Name     string
	TypeName string
	Extra    map[string]string
	Style    styles.VisualStyle
	Group    string // Id of the enclosing group, empty at top level
}

// Edge is an edge written to the diagram.
type Edge struct {
	ID               string // Animation id (e1, e2, ...) for animated edges
	RelationshipGUID string
	From, To         string // Short node ids
	Label            string
	Line             styles.LineStyle
}

// Group is a subgraph region.
type Group struct {
	ID     string
	Name   string
	Style  styles.VisualStyle
	Parent string
}

type styledItem struct {
	id    string
	style styles.VisualStyle
}

// Graph accumulates Mermaid flowchart text for one diagram.
//
// Each GUID becomes exactly one node; the first AddNode call for a GUID
// decides its label and style. An edge with a relationship GUID is written
// at most once; edges without one are always written.
//
// A Graph is single-use and not safe for concurrent use.
type Graph struct {
	title     string
	guid      string
	direction Direction

	buf    strings.Builder
	ids    map[string]string
	nextID int

	nodes     []Node
	nodeIndex map[string]int
	edges     []Edge
	usedRels  map[string]bool
	groups    []Group
	groupSeq  int
	open      []string
	styled    []styledItem
	animated  []string

	anchors    *AnchorTracker
	anchorMode AnchorMode

	cleared   bool
	finalized bool
	result    string
}

// New starts a diagram with a frontmatter title and flowchart header. An
// empty direction means TopDown.
func New(title, guid string, dir Direction) *Graph {
	g := &Graph{
		title:      title,
		guid:       guid,
		direction:  dir.Or(TopDown),
		ids:        make(map[string]string),
		nodeIndex:  make(map[string]int),
		usedRels:   make(map[string]bool),
		anchors:    NewAnchorTracker(),
		anchorMode: AnchorsNone,
	}

	g.buf.WriteString("---\n")
	if guid != "" {
		fmt.Fprintf(&g.buf, "title: %s [%s]\n", sanitize(title), guid)
	} else {
		fmt.Fprintf(&g.buf, "title: %s\n", sanitize(title))
	}
	g.buf.WriteString("---\n")
	fmt.Fprintf(&g.buf, "flowchart %s\n", g.direction)
	g.buf.WriteString(initDirective)
	g.buf.WriteString("\n\n")
	return g
}

// Title returns the diagram title.
func (g *Graph) Title() string { return g.title }

// GUID returns the GUID of the element the diagram is about.
func (g *Graph) GUID() string { return g.guid }

// Direction returns the flowchart direction.
func (g *Graph) Direction() Direction { return g.direction }

// Anchors returns the graph's anchor tracker.
func (g *Graph) Anchors() *AnchorTracker { return g.anchors }

// SetAnchorMode sets which anchor links Finalize draws.
func (g *Graph) SetAnchorMode(m AnchorMode) { g.anchorMode = m.Or(AnchorsNone) }

// ID returns the short id for guid, assigning the next integer (from 1) on
// first use.
func (g *Graph) ID(guid string) string {
	if id, ok := g.ids[guid]; ok {
		return id
	}
	g.nextID++
	id := strconv.Itoa(g.nextID)
	g.ids[guid] = id
	return id
}

// AddNode writes a node declaration unless guid already has one. It
// returns true when a new node was written. Nodes with an empty GUID are
// skipped.
func (g *Graph) AddNode(guid, displayName, typeName string, extra map[string]string, style styles.VisualStyle) bool {
	if guid == "" || g.finalized {
		return false
	}
	if _, ok := g.nodeIndex[guid]; ok {
		return false
	}

	id := g.ID(guid)
	n := Node{
		ID:       id,
		GUID:     guid,
		Name:     displayName,
		TypeName: typeName,
		Extra:    maps.Clone(extra),
		Style:    style,
		Group:    g.currentGroup(),
	}
	g.nodeIndex[guid] = len(g.nodes)
	g.nodes = append(g.nodes, n)

	fmt.Fprintf(&g.buf, "%s@{ shape: %s, label: \"*%s*\n**%s**", id, style.ShapeName(), sanitize(typeName), sanitize(displayName))
	for _, k := range slices.Sorted(maps.Keys(extra)) {
		fmt.Fprintf(&g.buf, "\n%s: %s", sanitize(k), sanitize(extra[k]))
	}
	g.buf.WriteString("\" }\n")

	if !style.IsZero() {
		g.styled = append(g.styled, styledItem{id: id, style: style})
	}
	return true
}

// AddElement writes a node for a catalog element and records its anchor.
func (g *Graph) AddElement(el catalog.Element, style styles.VisualStyle, extra map[string]string) bool {
	if el.IsZero() {
		return false
	}
	g.anchors.Record(el)
	return g.AddNode(el.GUID, el.DisplayName(), el.TypeName(), extra, style)
}

// AddEdge writes an edge from end1 to end2. When relationshipGUID is not
// empty and has been used before, the edge is dropped. Edges with a
// missing end are dropped.
func (g *Graph) AddEdge(relationshipGUID, end1GUID, end2GUID, label string, line styles.LineStyle) {
	if end1GUID == "" || end2GUID == "" || g.finalized {
		return
	}
	if relationshipGUID != "" {
		if g.usedRels[relationshipGUID] {
			return
		}
		g.usedRels[relationshipGUID] = true
	}

	e := Edge{
		RelationshipGUID: relationshipGUID,
		From:             g.ID(end1GUID),
		To:               g.ID(end2GUID),
		Label:            label,
		Line:             line,
	}
	if !line.Labelled() {
		e.Label = ""
	}

	g.buf.WriteString(e.From)
	if line.Animated() {
		e.ID = "e" + strconv.Itoa(len(g.animated)+1)
		g.animated = append(g.animated, e.ID)
		fmt.Fprintf(&g.buf, " %s@", e.ID)
	}
	g.buf.WriteString(line.Glyph())
	if e.Label != "" {
		fmt.Fprintf(&g.buf, "|%s|", sanitizeEdgeLabel(e.Label))
	}
	g.buf.WriteString(e.To)
	g.buf.WriteString("\n")

	g.edges = append(g.edges, e)
}

// StartGroup opens a subgraph. Every call opens a new region with its own
// id (g1, g2, ...), even when name repeats; name is only the label. Groups
// must be closed with EndGroup in reverse order of opening. An empty dir
// omits the direction line.
func (g *Graph) StartGroup(name string, style styles.VisualStyle, dir Direction) {
	if g.finalized {
		return
	}
	g.groupSeq++
	id := "g" + strconv.Itoa(g.groupSeq)
	g.groups = append(g.groups, Group{ID: id, Name: name, Style: style, Parent: g.currentGroup()})
	g.open = append(g.open, id)

	fmt.Fprintf(&g.buf, "subgraph %s [%s]\n", id, sanitize(name))
	if dir != "" {
		fmt.Fprintf(&g.buf, "direction %s\n", dir)
	}
	if !style.IsZero() {
		g.styled = append(g.styled, styledItem{id: id, style: style})
	}
}

// EndGroup closes the innermost open subgraph.
func (g *Graph) EndGroup() {
	if len(g.open) == 0 || g.finalized {
		return
	}
	g.open = g.open[:len(g.open)-1]
	g.buf.WriteString("end\n")
}

func (g *Graph) currentGroup() string {
	if len(g.open) == 0 {
		return ""
	}
	return g.open[len(g.open)-1]
}

// Clear marks the diagram as having nothing worth rendering. Finalize then
// returns the empty string.
func (g *Graph) Clear() { g.cleared = true }

// Cleared reports whether Clear was called.
func (g *Graph) Cleared() bool { return g.cleared }

// HasNode reports whether a node was written for guid.
func (g *Graph) HasNode(guid string) bool {
	_, ok := g.nodeIndex[guid]
	return ok
}

// Node returns the node written for guid.
func (g *Graph) Node(guid string) (Node, bool) {
	i, ok := g.nodeIndex[guid]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// NodeCount returns the number of nodes written.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges written.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Nodes returns the nodes in emission order.
func (g *Graph) Nodes() []Node { return slices.Clone(g.nodes) }

// Edges returns the edges in emission order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Groups returns the subgraphs in opening order.
func (g *Graph) Groups() []Group { return slices.Clone(g.groups) }

// Finalize draws anchor links according to the anchor mode, appends the
// style and animation directives and returns the diagram text. It returns
// the empty string when the diagram was cleared. Later calls return the
// same result.
func (g *Graph) Finalize() string {
	if g.finalized {
		return g.result
	}
	if g.cleared {
		g.finalized = true
		return ""
	}

	for len(g.open) > 0 {
		g.EndGroup()
	}

	switch g.anchorMode {
	case AnchorsExisting:
		g.anchors.Emit(g, false)
	case AnchorsAll:
		g.anchors.Emit(g, true)
	}

	for _, s := range g.styled {
		fmt.Fprintf(&g.buf, "style %s %s\n", s.id, s.style.Directive())
	}
	for _, id := range g.animated {
		fmt.Fprintf(&g.buf, "%s@{ animation: fast }\n", id)
	}

	g.finalized = true
	g.result = g.buf.String()
	return g.result
}

// sanitize makes a name safe inside a quoted Mermaid label. Double quotes
// become single quotes and "//" is split so it cannot be read as a link.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, `"`, "'")
	for strings.Contains(s, "//") {
		s = strings.ReplaceAll(s, "//", "/ /")
	}
	return s
}

func sanitizeEdgeLabel(s string) string {
	return sanitize(strings.ReplaceAll(s, "|", " "))
}
