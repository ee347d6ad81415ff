package builder

import (
	"github.com/odpi/mermaidgraph/pkg/catalog"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid/styles"
)

var projectDefaults = defaults{
	heading:   "Project Hierarchy",
	direction: mermaid.TopDown,
	anchors:   mermaid.AnchorsNone,
	principal: styles.PrincipalProject,
	extraKeys: []string{"projectStatus"},
}

// Project renders a project with its team, dependencies and child
// projects, recursing depth-first through the hierarchy.
func Project(agg *catalog.ProjectHierarchy, opts Options) string {
	return buildProject(agg, opts).Finalize()
}

func buildProject(agg *catalog.ProjectHierarchy, opts Options) *mermaid.Graph {
	if agg == nil {
		return empty(projectDefaults.heading)
	}
	w := begin(agg.Project, projectDefaults, opts)
	w.project(*agg)
	return w.done()
}

func (w *walker) project(p catalog.ProjectHierarchy) {
	guid := p.Project.GUID
	w.relatedAll(guid, p.Team, "ProjectTeam", styles.SolutionActor)
	w.relatedAll(guid, p.Dependencies, "ProjectDependency", styles.ProjectElement)
	for _, child := range p.Children {
		if w.related(guid, child.Link.Related(child.Project, "ProjectHierarchy"), styles.ProjectElement) {
			w.project(child)
		}
	}
}

var collectionDefaults = defaults{
	heading:   "Collection",
	direction: mermaid.TopDown,
	anchors:   mermaid.AnchorsNone,
	principal: styles.PrincipalCollection,
}

// Collection renders a collection with its members and nested
// collections. Collection-role classifications such as Folder or
// HomeCollection decide how nested collections are drawn.
func Collection(agg *catalog.CollectionHierarchy, opts Options) string {
	return buildCollection(agg, opts).Finalize()
}

func buildCollection(agg *catalog.CollectionHierarchy, opts Options) *mermaid.Graph {
	if agg == nil {
		return empty(collectionDefaults.heading)
	}
	w := begin(agg.Collection, collectionDefaults, opts)
	w.collection(*agg)
	return w.done()
}

func (w *walker) collection(c catalog.CollectionHierarchy) {
	guid := c.Collection.GUID
	w.relatedAll(guid, c.Members, "CollectionMembership", styles.CollectionMember)
	for _, child := range c.Children {
		if w.related(guid, child.Link.Related(child.Collection, "CollectionMembership"), styles.CollectionMember) {
			w.collection(child)
		}
	}
}
