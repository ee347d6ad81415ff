// Package catalog defines the metadata aggregates rendered by mermaidgraph.
//
// The types in this package mirror what the catalog's metadata-fetch layer
// hands to the diagram builders: an element summary (GUID, type with its
// supertype chain, classifications, properties) and its related-element
// summaries, bundled into one aggregate per diagram kind.
//
// # Core Types
//
//   - [Element]: a reference to a catalog entity
//   - [RelatedElement]: an element paired with the relationship that links it
//   - [Relationship]: a relationship between two elements, used by graph-shaped aggregates
//   - [Properties]: a property bag with string or typed values
//
// Aggregates ([ElementGraph], [AssetGraph], [LineageGraph], [Glossary],
// [GlossaryTerm], [ProjectHierarchy], [CollectionHierarchy],
// [GovernanceDefinitionGraph], [SolutionBlueprint], [SolutionComponent],
// [InformationSupplyChain], [DataStructure]) are read-only to the renderer.
// Every collection is a nil-safe slice: a missing category renders nothing.
//
// # Serialization
//
// Aggregates are JSON documents (YAML is accepted and converted). A file may
// carry a kind envelope:
//
//	{
//	  "kind": "element",
//	  "aggregate": {"element": {"guid": "G1", "type": {"typeName": "Asset"}}}
//	}
//
// Use [ReadDocument] or [ParseDocument] to load one and [Decode] to turn the
// raw aggregate into its typed form.
//
// # Concurrency
//
// Values are immutable once decoded and may be shared between goroutines.
package catalog
