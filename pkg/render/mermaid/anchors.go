package mermaid

import (
	"github.com/odpi/mermaidgraph/pkg/catalog"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid/styles"
)

// AnchorLabel is the label on edges from an anchor to its anchored elements.
const AnchorLabel = "Anchor for"

// AnchorNode is an anchor seen during traversal and the elements anchored
// to it, in the order they were recorded.
type AnchorNode struct {
	GUID     string
	TypeName string
	Anchored []string
}

// AnchorTracker records which traversed elements declare an anchor so the
// diagram can link them back to it at the end.
type AnchorTracker struct {
	order   []string
	anchors map[string]*AnchorNode
	seen    map[string]map[string]bool
}

// NewAnchorTracker returns an empty tracker.
func NewAnchorTracker() *AnchorTracker {
	return &AnchorTracker{
		anchors: make(map[string]*AnchorNode),
		seen:    make(map[string]map[string]bool),
	}
}

// Record notes el's anchor if it declares one other than itself. The first
// type name recorded for an anchor is kept.
func (t *AnchorTracker) Record(el catalog.Element) {
	anchorGUID, anchorType, ok := el.Anchor()
	if !ok {
		return
	}
	a, exists := t.anchors[anchorGUID]
	if !exists {
		a = &AnchorNode{GUID: anchorGUID, TypeName: anchorType}
		t.anchors[anchorGUID] = a
		t.seen[anchorGUID] = make(map[string]bool)
		t.order = append(t.order, anchorGUID)
	}
	if a.TypeName == "" {
		a.TypeName = anchorType
	}
	if !t.seen[anchorGUID][el.GUID] {
		t.seen[anchorGUID][el.GUID] = true
		a.Anchored = append(a.Anchored, el.GUID)
	}
}

// Len returns the number of anchors recorded.
func (t *AnchorTracker) Len() int { return len(t.order) }

// Anchors returns the recorded anchors in first-seen order.
func (t *AnchorTracker) Anchors() []AnchorNode {
	out := make([]AnchorNode, 0, len(t.order))
	for _, guid := range t.order {
		a := t.anchors[guid]
		out = append(out, AnchorNode{GUID: a.GUID, TypeName: a.TypeName, Anchored: append([]string(nil), a.Anchored...)})
	}
	return out
}

// Emit draws a dotted "Anchor for" edge from each anchor to the elements
// it anchors. With includeUnreferenced, anchors missing from the diagram
// are added as nodes first; otherwise they are skipped.
func (t *AnchorTracker) Emit(g *Graph, includeUnreferenced bool) {
	for _, guid := range t.order {
		a := t.anchors[guid]
		if !g.HasNode(a.GUID) {
			if !includeUnreferenced {
				continue
			}
			g.AddNode(a.GUID, a.GUID, a.TypeName, nil, styles.AnchorElement)
		}
		for _, anchored := range a.Anchored {
			if anchored == a.GUID {
				continue
			}
			g.AddEdge("", a.GUID, anchored, AnchorLabel, styles.LineDotted)
		}
	}
}
