package catalog

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Well-known property and classification names.
const (
	PropDisplayName   = "displayName"
	PropName          = "name"
	PropQualifiedName = "qualifiedName"
	PropLabel         = "label"
	PropPosition      = "position"
	PropMinCard       = "minCardinality"
	PropMaxCard       = "maxCardinality"

	ClassificationAnchors = "Anchors"
	PropAnchorGUID        = "anchorGUID"
	PropAnchorTypeName    = "anchorTypeName"
)

// =============================================================================
// Properties
// =============================================================================

// Properties is a string-keyed property bag. Values are strings or typed
// values (numbers, booleans, lists) as decoded from JSON.
type Properties map[string]any

// Has reports whether key is present with a non-nil value.
func (p Properties) Has(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}

// String returns the value for key formatted as a string, or "" when absent.
func (p Properties) String(key string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// Int returns the value for key as an int. Numbers decoded from JSON arrive
// as float64; numeric strings are accepted too.
func (p Properties) Int(key string) (int, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	case json.Number:
		n, err := t.Int64()
		return int(n), err == nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		return n, err == nil
	}
	return 0, false
}

// Strings returns every property rendered as a string, dropping nil values.
func (p Properties) Strings() map[string]string {
	if len(p) == 0 {
		return nil
	}
	out := make(map[string]string, len(p))
	for k := range p {
		if s := p.String(k); s != "" {
			out[k] = s
		}
	}
	return out
}

// Pick returns the string values of the listed keys that are present.
func (p Properties) Pick(keys ...string) map[string]string {
	var out map[string]string
	for _, k := range keys {
		if s := p.String(k); s != "" {
			if out == nil {
				out = make(map[string]string, len(keys))
			}
			out[k] = s
		}
	}
	return out
}

// =============================================================================
// ElementType / Classification
// =============================================================================

// ElementType names an element's open metadata type. SuperTypeNames is
// ordered from the immediate supertype up to the root type.
type ElementType struct {
	TypeName       string   `json:"typeName"`
	SuperTypeNames []string `json:"superTypeNames,omitempty"`
}

// Classification is a named classification attached to an element.
type Classification struct {
	Name       string     `json:"classificationName"`
	Properties Properties `json:"classificationProperties,omitempty"`
}

// =============================================================================
// Element
// =============================================================================

// Element is a summary of a catalog entity (a metadata element summary).
type Element struct {
	GUID            string           `json:"guid"`
	Type            ElementType      `json:"type"`
	Classifications []Classification `json:"classifications,omitempty"`
	Properties      Properties       `json:"properties,omitempty"`
}

// IsZero reports whether the element was not supplied.
func (e Element) IsZero() bool { return e.GUID == "" }

// TypeName returns the element's type name.
func (e Element) TypeName() string { return e.Type.TypeName }

// DisplayName returns the best human-readable name for the element:
// displayName, then name, then qualifiedName, then the GUID.
func (e Element) DisplayName() string {
	for _, key := range []string{PropDisplayName, PropName, PropQualifiedName} {
		if s := e.Properties.String(key); s != "" {
			return s
		}
	}
	return e.GUID
}

// TypeChain returns the type name followed by its supertypes, most specific
// first.
func (e Element) TypeChain() []string {
	chain := make([]string, 0, len(e.Type.SuperTypeNames)+1)
	if e.Type.TypeName != "" {
		chain = append(chain, e.Type.TypeName)
	}
	return append(chain, e.Type.SuperTypeNames...)
}

// IsA reports whether the element's type or one of its supertypes is typeName.
func (e Element) IsA(typeName string) bool {
	return slices.Contains(e.TypeChain(), typeName)
}

// Classification returns the named classification if the element carries it.
func (e Element) Classification(name string) (Classification, bool) {
	for _, c := range e.Classifications {
		if c.Name == name {
			return c, true
		}
	}
	return Classification{}, false
}

// ClassificationNames returns the names of the element's classifications in
// declaration order.
func (e Element) ClassificationNames() []string {
	names := make([]string, 0, len(e.Classifications))
	for _, c := range e.Classifications {
		names = append(names, c.Name)
	}
	return names
}

// Anchor returns the element's declared anchor. ok is false when the element
// has no Anchors classification or is its own anchor.
func (e Element) Anchor() (guid, typeName string, ok bool) {
	c, found := e.Classification(ClassificationAnchors)
	if !found {
		return "", "", false
	}
	guid = c.Properties.String(PropAnchorGUID)
	if guid == "" || guid == e.GUID {
		return "", "", false
	}
	return guid, c.Properties.String(PropAnchorTypeName), true
}

// Summary returns selected properties for display in a node label, skipping
// the ones already used for the display name.
func (e Element) Summary(keys ...string) map[string]string {
	props := e.Properties.Pick(keys...)
	name := e.DisplayName()
	for k, v := range maps.Clone(props) {
		if v == name {
			delete(props, k)
		}
	}
	if len(props) == 0 {
		return nil
	}
	return props
}
