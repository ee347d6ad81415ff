package builder

import (
	"encoding/json"
	"slices"

	"github.com/samber/lo"

	"github.com/odpi/mermaidgraph/pkg/catalog"
	"github.com/odpi/mermaidgraph/pkg/errors"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid"
)

// Kind is a diagram kind: a name, the aggregate it reads and the builder
// that draws it.
type Kind struct {
	Name        string
	Aggregate   string
	Description string

	build func(raw json.RawMessage, opts Options) (*mermaid.Graph, error)
}

// Build decodes raw as the kind's aggregate and draws it. The returned
// graph has not been finalized.
func (k Kind) Build(raw json.RawMessage, opts Options) (*mermaid.Graph, error) {
	return k.build(raw, opts)
}

// Render decodes raw, draws it and returns the finished diagram text. An
// empty string means there was nothing worth drawing.
func (k Kind) Render(raw json.RawMessage, opts Options) (string, error) {
	g, err := k.build(raw, opts)
	if err != nil {
		return "", err
	}
	return g.Finalize(), nil
}

func kind[T any](name, aggregate, description string, build func(*T, Options) *mermaid.Graph) Kind {
	return Kind{
		Name:        name,
		Aggregate:   aggregate,
		Description: description,
		build: func(raw json.RawMessage, opts Options) (*mermaid.Graph, error) {
			agg, err := catalog.Decode[T](raw)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidAggregate, err, "%s aggregate", name)
			}
			return build(agg, opts), nil
		},
	}
}

var kinds = []Kind{
	kind("element", "ElementGraph", "Element and its directly related elements", buildElement),
	kind("asset", "AssetGraph", "Asset with its anchored elements and their relationships", buildAsset),
	kind("lineage", "LineageGraph", "Lineage flows around an asset", buildLineage),
	kind("glossary", "Glossary", "Glossary with its category tree and terms", buildGlossary),
	kind("term", "GlossaryTerm", "Glossary term with its categories, related terms and assignments", buildTerm),
	kind("project", "ProjectHierarchy", "Project with its team and child projects", buildProject),
	kind("collection", "CollectionHierarchy", "Collection with its members and nested collections", buildCollection),
	kind("governance", "GovernanceDefinitionGraph", "Governance definition with supporting definitions and implementations", buildGovernance),
	kind("blueprint", "SolutionBlueprint", "Solution blueprint with its components", buildBlueprint),
	kind("component", "SolutionComponent", "Solution component with subcomponents, wires and actors", buildComponent),
	kind("supply-chain", "InformationSupplyChain", "Information supply chain with segments and links", buildSupplyChain),
	kind("data-structure", "DataStructure", "Data structure with its member data fields", buildDataStructure),
}

// Kinds returns every registered diagram kind.
func Kinds() []Kind {
	return slices.Clone(kinds)
}

// Names returns the names of the registered diagram kinds.
func Names() []string {
	return lo.Map(kinds, func(k Kind, _ int) string { return k.Name })
}

// Lookup returns the kind with the given name.
func Lookup(name string) (Kind, error) {
	if err := errors.ValidateKind(name); err != nil {
		return Kind{}, err
	}
	k, ok := lo.Find(kinds, func(k Kind) bool { return k.Name == name })
	if !ok {
		return Kind{}, errors.New(errors.ErrCodeInvalidKind, "unknown diagram kind %q", name)
	}
	return k, nil
}

// Build looks up kind by name and draws raw with it.
func Build(name string, raw json.RawMessage, opts Options) (*mermaid.Graph, error) {
	k, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return k.Build(raw, opts)
}
