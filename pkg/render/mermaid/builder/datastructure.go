package builder

import (
	"github.com/odpi/mermaidgraph/pkg/catalog"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid/styles"
)

var dataStructureDefaults = defaults{
	heading:   "Data Structure",
	direction: mermaid.LeftRight,
	anchors:   mermaid.AnchorsNone,
	principal: styles.PrincipalDataStructure,
	extraKeys: []string{"dataType"},
}

// DataStructure renders a data structure and its member data fields,
// recursing into nested fields. Member edges are labelled with the field's
// position and cardinality, e.g. "[1] 0..*".
func DataStructure(agg *catalog.DataStructure, opts Options) string {
	return buildDataStructure(agg, opts).Finalize()
}

func buildDataStructure(agg *catalog.DataStructure, opts Options) *mermaid.Graph {
	if agg == nil {
		return empty(dataStructureDefaults.heading)
	}
	w := begin(agg.Structure, dataStructureDefaults, opts)
	guid := agg.Structure.GUID

	for _, f := range agg.Fields {
		w.field(guid, f, "MemberDataField")
	}
	w.relatedAll(guid, agg.Other, "", styles.VisualStyle{})
	return w.done()
}

func (w *walker) field(parentGUID string, f catalog.DataField, linkType string) {
	if !w.related(parentGUID, f.Link.Related(f.Field, linkType), styles.DataField) {
		return
	}
	guid := f.Field.GUID
	for _, nested := range f.Fields {
		w.field(guid, nested, "NestedDataField")
	}
	w.relatedAll(guid, f.Related, "", styles.VisualStyle{})
}
