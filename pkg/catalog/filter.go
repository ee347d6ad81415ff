package catalog

import (
	"strings"

	"github.com/gobwas/glob"

	"github.com/odpi/mermaidgraph/pkg/errors"
)

// RelationshipFilter selects relationship types by glob pattern. A type is
// allowed when it matches an include pattern (or there are none) and matches
// no exclude pattern. The nil filter allows everything.
type RelationshipFilter struct {
	include  []glob.Glob
	exclude  []glob.Glob
	patterns []string
}

// NewRelationshipFilter compiles include and exclude patterns such as
// "Semantic*" or "{DataFlow,ControlFlow}". It returns nil when both lists
// are empty.
func NewRelationshipFilter(include, exclude []string) (*RelationshipFilter, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return nil, nil
	}
	f := &RelationshipFilter{}
	for _, p := range include {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid include pattern %q", p)
		}
		f.include = append(f.include, g)
		f.patterns = append(f.patterns, "+"+p)
	}
	for _, p := range exclude {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid exclude pattern %q", p)
		}
		f.exclude = append(f.exclude, g)
		f.patterns = append(f.patterns, "-"+p)
	}
	return f, nil
}

// Allows reports whether relationships of type relType should be drawn.
// Untyped relationships are always allowed.
func (f *RelationshipFilter) Allows(relType string) bool {
	if f == nil || relType == "" {
		return true
	}
	for _, g := range f.exclude {
		if g.Match(relType) {
			return false
		}
	}
	if len(f.include) == 0 {
		return true
	}
	for _, g := range f.include {
		if g.Match(relType) {
			return true
		}
	}
	return false
}

// Patterns returns the source patterns, include patterns prefixed with "+"
// and exclude patterns with "-". Used for cache keys.
func (f *RelationshipFilter) Patterns() []string {
	if f == nil {
		return nil
	}
	return f.patterns
}

// SplitPatterns splits a comma-separated pattern list such as
// "Data*,{Semantic,Term}*" into its patterns. Commas inside braces and
// escaped commas belong to the pattern. Blank entries are dropped.
func SplitPatterns(values ...string) []string {
	var out []string
	add := func(p string) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	for _, v := range values {
		depth, start := 0, 0
		for i := 0; i < len(v); i++ {
			switch v[i] {
			case '\\':
				i++
			case '{':
				depth++
			case '}':
				if depth > 0 {
					depth--
				}
			case ',':
				if depth == 0 {
					add(v[start:i])
					start = i + 1
				}
			}
		}
		add(v[start:])
	}
	return out
}
