package catalog

// ElementGraph is an element with everything directly related to it.
type ElementGraph struct {
	Element Element          `json:"element"`
	Related []RelatedElement `json:"relatedElements,omitempty"`
}

// AssetGraph is an asset with the elements anchored to it and the
// relationships between all of them.
type AssetGraph struct {
	Asset            Element          `json:"asset"`
	AnchoredElements []Element        `json:"anchoredElements,omitempty"`
	Relationships    []Relationship   `json:"relationships,omitempty"`
	Related          []RelatedElement `json:"relatedElements,omitempty"`
}

// LineageGraph is the lineage around an asset.
type LineageGraph struct {
	Asset Element `json:"asset"`

	// Lineage relationships (DataFlow, ControlFlow, ProcessCall, ...).
	Relationships []Relationship `json:"lineageRelationships,omitempty"`

	// Links from lineage elements to the solution components and
	// deployments that implement them.
	Implementations []Relationship `json:"implementationLinks,omitempty"`

	// Supply chain segments that group lineage elements.
	Segments []LineageSegment `json:"segments,omitempty"`

	UltimateSources      []RelatedElement `json:"ultimateSources,omitempty"`
	UltimateDestinations []RelatedElement `json:"ultimateDestinations,omitempty"`
}

// LineageSegment groups lineage elements under an information supply chain
// segment. Segments nest through Segments.
type LineageSegment struct {
	Segment  Element          `json:"segment"`
	Members  []string         `json:"memberGUIDs,omitempty"`
	Segments []LineageSegment `json:"segments,omitempty"`
}

// Glossary is a glossary with its category tree and the terms anchored to it.
type Glossary struct {
	Glossary   Element          `json:"glossary"`
	Categories []CategoryTree   `json:"categories,omitempty"`
	Terms      []RelatedElement `json:"terms,omitempty"`
}

// CategoryTree is a glossary category with its subcategories and the terms
// it categorizes.
type CategoryTree struct {
	Category      Element          `json:"category"`
	Link          Link             `json:"link,omitempty"`
	Terms         []RelatedElement `json:"terms,omitempty"`
	Subcategories []CategoryTree   `json:"subcategories,omitempty"`
}

// GlossaryTerm is a glossary term with its neighbourhood.
type GlossaryTerm struct {
	Term                Element          `json:"term"`
	Glossary            Element          `json:"glossary,omitempty"`
	Categories          []RelatedElement `json:"categories,omitempty"`
	RelatedTerms        []RelatedElement `json:"relatedTerms,omitempty"`
	SemanticAssignments []RelatedElement `json:"semanticAssignments,omitempty"`
	Other               []RelatedElement `json:"otherRelatedElements,omitempty"`
}

// ProjectHierarchy is a project, its team and its child projects.
type ProjectHierarchy struct {
	Project      Element            `json:"project"`
	Link         Link               `json:"link,omitempty"`
	Team         []RelatedElement   `json:"team,omitempty"`
	Dependencies []RelatedElement   `json:"dependencies,omitempty"`
	Children     []ProjectHierarchy `json:"children,omitempty"`
}

// CollectionHierarchy is a collection, its members and nested collections.
type CollectionHierarchy struct {
	Collection Element               `json:"collection"`
	Link       Link                  `json:"link,omitempty"`
	Members    []RelatedElement      `json:"members,omitempty"`
	Children   []CollectionHierarchy `json:"children,omitempty"`
}

// GovernanceDefinitionGraph is a governance definition with the definitions
// that support it and the elements that implement or are governed by it.
type GovernanceDefinitionGraph struct {
	Definition      Element          `json:"definition"`
	Supporting      []RelatedElement `json:"supportingDefinitions,omitempty"`
	Peers           []RelatedElement `json:"peerDefinitions,omitempty"`
	Implementations []RelatedElement `json:"implementations,omitempty"`
	Metrics         []RelatedElement `json:"metrics,omitempty"`
	Governed        []RelatedElement `json:"governedElements,omitempty"`
	Other           []RelatedElement `json:"otherRelatedElements,omitempty"`
}

// SolutionBlueprint is a blueprint with the solution components it composes.
type SolutionBlueprint struct {
	Blueprint  Element             `json:"blueprint"`
	Components []SolutionComponent `json:"components,omitempty"`
	Other      []RelatedElement    `json:"otherRelatedElements,omitempty"`
}

// SolutionComponent is a solution component with its subcomponents, wires,
// actors and implementations.
type SolutionComponent struct {
	Component       Element             `json:"component"`
	Link            Link                `json:"link,omitempty"`
	SubComponents   []SolutionComponent `json:"subComponents,omitempty"`
	Wires           []RelatedElement    `json:"wires,omitempty"`
	Actors          []RelatedElement    `json:"actors,omitempty"`
	Implementations []RelatedElement    `json:"implementations,omitempty"`
	Other           []RelatedElement    `json:"otherRelatedElements,omitempty"`
}

// InformationSupplyChain is a supply chain with its segments and the links
// between the components that realize it.
type InformationSupplyChain struct {
	Chain    Element              `json:"chain"`
	Segments []SupplyChainSegment `json:"segments,omitempty"`
	Links    []Relationship       `json:"links,omitempty"`
	Other    []RelatedElement     `json:"otherRelatedElements,omitempty"`
}

// SupplyChainSegment is a segment of an information supply chain.
type SupplyChainSegment struct {
	Segment         Element              `json:"segment"`
	Link            Link                 `json:"link,omitempty"`
	Implementations []RelatedElement     `json:"implementations,omitempty"`
	Actors          []RelatedElement     `json:"actors,omitempty"`
	Segments        []SupplyChainSegment `json:"segments,omitempty"`
}

// DataStructure is a data structure with its member data fields.
type DataStructure struct {
	Structure Element          `json:"structure"`
	Fields    []DataField      `json:"fields,omitempty"`
	Other     []RelatedElement `json:"otherRelatedElements,omitempty"`
}

// DataField is a data field with its nested fields. The link properties
// carry position, minCardinality and maxCardinality.
type DataField struct {
	Field   Element          `json:"field"`
	Link    Link             `json:"link,omitempty"`
	Fields  []DataField      `json:"fields,omitempty"`
	Related []RelatedElement `json:"relatedElements,omitempty"`
}
