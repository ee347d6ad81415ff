package catalog

// RelatedElement pairs an element with the relationship that links it to the
// element currently being traversed.
//
// RelatedElementAtEnd1 reports which end of the relationship the related
// element sits on. When true the relationship points from the related element
// to the traversal root.
type RelatedElement struct {
	RelationshipGUID       string     `json:"relationshipGUID,omitempty"`
	RelationshipType       string     `json:"relationshipType,omitempty"`
	RelationshipProperties Properties `json:"relationshipProperties,omitempty"`
	RelatedElementAtEnd1   bool       `json:"relatedElementAtEnd1,omitempty"`
	Element                Element    `json:"relatedElement"`
}

// Ends returns the end1 and end2 GUIDs of the relationship given the GUID of
// the traversal root.
func (r RelatedElement) Ends(rootGUID string) (end1, end2 string) {
	if r.RelatedElementAtEnd1 {
		return r.Element.GUID, rootGUID
	}
	return rootGUID, r.Element.GUID
}

// Relationship is a relationship between two elements. Graph-shaped
// aggregates (asset, lineage, supply chain) carry these directly because
// neither end is the traversal root. End elements are usually stubs holding
// only a GUID, a type and a name.
type Relationship struct {
	GUID       string     `json:"guid,omitempty"`
	Type       string     `json:"type"`
	End1       Element    `json:"end1"`
	End2       Element    `json:"end2"`
	Properties Properties `json:"properties,omitempty"`
}

// AsRelated returns the relationship seen from end1, with end2 as the
// related element.
func (r Relationship) AsRelated() RelatedElement {
	return RelatedElement{
		RelationshipGUID:       r.GUID,
		RelationshipType:       r.Type,
		RelationshipProperties: r.Properties,
		Element:                r.End2,
	}
}

// Link describes the relationship that attaches a child to its parent in a
// hierarchical aggregate. A zero Link means the builder's default
// relationship for that hierarchy.
type Link struct {
	RelationshipGUID       string     `json:"relationshipGUID,omitempty"`
	RelationshipType       string     `json:"relationshipType,omitempty"`
	RelationshipProperties Properties `json:"relationshipProperties,omitempty"`
}

// Related returns a RelatedElement linking el to its parent through l.
// defaultType fills in the relationship type when l does not name one.
func (l Link) Related(el Element, defaultType string) RelatedElement {
	typ := l.RelationshipType
	if typ == "" {
		typ = defaultType
	}
	return RelatedElement{
		RelationshipGUID:       l.RelationshipGUID,
		RelationshipType:       typ,
		RelationshipProperties: l.RelationshipProperties,
		Element:                el,
	}
}
