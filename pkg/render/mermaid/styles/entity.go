package styles

import (
	"slices"

	"github.com/odpi/mermaidgraph/pkg/catalog"
)

// typeStyles maps open metadata type names to styles. Lookup walks an
// element's type chain from the most specific type, so a DeployedAPI
// resolves to its own entry before reaching Asset.
var typeStyles = map[string]VisualStyle{
	// Assets
	"Asset":                     style("Asset", "#000000", "#E3F2FD", "#1976D2", "rect"),
	"DataSet":                   style("DataSet", "#000000", "#E1F5FE", "#0288D1", "lin-rect"),
	"DataFile":                  style("DataFile", "#000000", "#E0F7FA", "#0097A7", "doc"),
	"DataFolder":                style("DataFolder", "#000000", "#E0F7FA", "#0097A7", "docs"),
	"FileFolder":                style("FileFolder", "#000000", "#E0F7FA", "#0097A7", "docs"),
	"DataStore":                 style("DataStore", "#000000", "#ECEFF1", "#455A64", "cyl"),
	"Database":                  style("Database", "#000000", "#ECEFF1", "#455A64", "cyl"),
	"DeployedDatabaseSchema":    style("DeployedDatabaseSchema", "#000000", "#ECEFF1", "#455A64", "cyl"),
	"DeployedAPI":               style("DeployedAPI", "#000000", "#F3E5F5", "#7B1FA2", "hex"),
	"Topic":                     style("Topic", "#000000", "#F3E5F5", "#7B1FA2", "h-cyl"),
	"Process":                   style("Process", "#000000", "#FFF3E0", "#F57C00", "fr-rect"),
	"Application":               style("Application", "#000000", "#FFF3E0", "#F57C00", "st-rect"),
	"DeployedSoftwareComponent": style("DeployedSoftwareComponent", "#000000", "#FFF3E0", "#F57C00", "fr-rect"),

	"Port":                   style("Port", "#000000", "#FFF8E1", "#FF8F00", "tag-rect"),
	"DigitalProduct":         style("DigitalProduct", "#000000", "#FCE4EC", "#C2185B", "stadium"),
	"ITInfrastructure":       Host,
	"Host":                   Host,
	"SoftwareServerPlatform": Host,
	"SoftwareCapability":     style("SoftwareCapability", "#000000", "#EAEDED", "#566573", "st-rect"),
	"Endpoint":               style("Endpoint", "#000000", "#EAEDED", "#566573", "tri"),

	// Glossary
	"Glossary":         style("Glossary", "#000000", "#E9F7EF", "#1B5E20", "docs"),
	"GlossaryCategory": GlossaryCategory,
	"GlossaryTerm":     GlossaryTerm,

	// Projects, collections and people
	"Project":           ProjectElement,
	"Collection":        CollectionMember,
	"ActorProfile":      SolutionActor,
	"PersonRole":        SolutionActor,
	"ActorRole":         SolutionActor,
	"UserIdentity":      style("UserIdentity", "#000000", "#FDEBD0", "#A04000", "sm-circ"),
	"Community":         style("Community", "#000000", "#FDEBD0", "#A04000", "cloud"),
	"ExternalReference": style("ExternalReference", "#000000", "#FFFFFF", "#757575", "lin-doc"),

	// Governance
	"GovernanceDefinition": GovernanceElement,
	"GovernanceDriver":     style("GovernanceDriver", "#000000", "#FADBD8", "#7B1F1F", "trap-t"),
	"GovernancePolicy":     style("GovernancePolicy", "#000000", "#FADBD8", "#7B1F1F", "flag"),
	"GovernanceControl":    style("GovernanceControl", "#000000", "#FADBD8", "#7B1F1F", "lean-r"),
	"GovernanceMetric":     GovernanceMetric,

	// Solutions
	"SolutionBlueprint":             style("SolutionBlueprint", "#000000", "#D1F2EB", "#00575C", "docs"),
	"SolutionComponent":             SolutionComponent,
	"InformationSupplyChain":        style("InformationSupplyChain", "#000000", "#EFEBE9", "#3E2723", "lin-rect"),
	"InformationSupplyChainSegment": SupplyChainSegment,

	// Data design
	"DataStructure":        style("DataStructure", "#000000", "#ECEFF1", "#37474F", "div-rect"),
	"DataField":            DataField,
	"DataClass":            style("DataClass", "#000000", "#F9EBEA", "#922B21", "hex"),
	"ValidValueDefinition": style("ValidValueDefinition", "#000000", "#FEF9E7", "#B7950B", "diam"),
	"SchemaType":           style("SchemaType", "#000000", "#F8F9F9", "#5D6D7E", "rect"),
	"SchemaAttribute":      style("SchemaAttribute", "#000000", "#F8F9F9", "#5D6D7E", "rect"),
}

// classificationStyle pairs a classification with the style it forces.
type classificationStyle struct {
	name  string
	style VisualStyle
}

// classificationStyles is ordered by precedence. The first classification
// an element carries decides its style.
var classificationStyles = []classificationStyle{
	{"Memento", style("Memento", "#FFFFFF", "#5D6D7E", "#2C3E50", "odd")},
	{"Template", style("Template", "#000000", "#FFF9C4", "#F9A825", "notch-rect")},
	{"TemplateSubstitute", style("TemplateSubstitute", "#000000", "#FFFDE7", "#F9A825", "notch-rect")},

	// Collection roles
	{"HomeCollection", style("HomeCollection", "#000000", "#FFE0B2", "#E65100", "docs")},
	{"ResultsSet", style("ResultsSet", "#000000", "#FFE0B2", "#E65100", "docs")},
	{"RecentAccess", style("RecentAccess", "#000000", "#FFE0B2", "#E65100", "docs")},
	{"WorkItemList", style("WorkItemList", "#000000", "#FFE0B2", "#E65100", "docs")},
	{"Folder", style("Folder", "#000000", "#FFE0B2", "#E65100", "docs")},
	{"NamespaceCollection", style("NamespaceCollection", "#000000", "#FFE0B2", "#E65100", "docs")},

	{"Taxonomy", style("Taxonomy", "#000000", "#E8F5E9", "#388E3C", "tag-rect")},
	{"CanonicalVocabulary", style("CanonicalVocabulary", "#000000", "#E8F5E9", "#388E3C", "tag-rect")},
	{"SubjectArea", style("SubjectArea", "#000000", "#E8EAF6", "#303F9F", "tag-rect")},
	{"Incomplete", style("Incomplete", "#000000", "#FFEBEE", "#C62828", "odd")},
}

// ForEntity resolves the style for an element from its type chain (most
// specific first) and classification names. A matching classification
// replaces the type-based style entirely. def is used when no type in the
// chain has a style.
func ForEntity(typeChain, classifications []string, def VisualStyle) VisualStyle {
	resolved := def
	for _, typeName := range typeChain {
		if s, ok := typeStyles[typeName]; ok {
			resolved = s
			break
		}
	}

	if len(classifications) == 0 {
		return resolved
	}
	for _, cs := range classificationStyles {
		if slices.Contains(classifications, cs.name) {
			return cs.style
		}
	}
	return resolved
}

// ForElement resolves the style of a catalog element.
func ForElement(el catalog.Element, def VisualStyle) VisualStyle {
	return ForEntity(el.TypeChain(), el.ClassificationNames(), def)
}

// ForType returns the style registered for a single type name.
func ForType(typeName string) (VisualStyle, bool) {
	s, ok := typeStyles[typeName]
	return s, ok
}

// lineageRelationships are the relationship types that carry lineage.
var lineageRelationships = map[string]bool{
	"DataFlow":            true,
	"ControlFlow":         true,
	"ProcessCall":         true,
	"LineageMapping":      true,
	"UltimateSource":      true,
	"UltimateDestination": true,
}

// IsLineage reports whether relType is a lineage relationship type.
func IsLineage(relType string) bool {
	return lineageRelationships[relType]
}

// ForRelationship returns the style for an element reached through a
// relationship of type relType.
func ForRelationship(relType string) VisualStyle {
	switch {
	case relType == "ImplementedBy":
		return SolutionComponent
	case relType == "DeployedOn":
		return Host
	case IsLineage(relType):
		return LineageElement
	default:
		return LinkedElement
	}
}
