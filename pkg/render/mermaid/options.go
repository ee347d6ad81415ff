package mermaid

import (
	"strings"

	"github.com/odpi/mermaidgraph/pkg/errors"
)

// Direction is the flowchart layout direction.
type Direction string

const (
	TopDown   Direction = "TD"
	LeftRight Direction = "LR"
	RightLeft Direction = "RL"
)

// ValidDirections lists the accepted directions.
var ValidDirections = []Direction{TopDown, LeftRight, RightLeft}

// ParseDirection parses a direction name. "TB" is accepted as TopDown and
// the empty string yields the empty Direction (the builder default).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "TD", "TB":
		return TopDown, nil
	case "LR":
		return LeftRight, nil
	case "RL":
		return RightLeft, nil
	}
	return "", errors.New(errors.ErrCodeInvalidDirection, "invalid direction %q (use TD, LR or RL)", s)
}

// Or returns d, or def when d is empty.
func (d Direction) Or(def Direction) Direction {
	if d == "" {
		return def
	}
	return d
}

// AnchorMode controls which anchor links are drawn when a diagram is
// finalized.
type AnchorMode int

const (
	// AnchorsDefault defers to the builder's own choice.
	AnchorsDefault AnchorMode = iota
	// AnchorsNone draws no anchor links.
	AnchorsNone
	// AnchorsExisting links anchors that are already nodes in the diagram.
	AnchorsExisting
	// AnchorsAll adds missing anchor nodes and links every anchored element.
	AnchorsAll
)

var anchorModeNames = map[AnchorMode]string{
	AnchorsDefault:  "default",
	AnchorsNone:     "none",
	AnchorsExisting: "existing",
	AnchorsAll:      "all",
}

func (m AnchorMode) String() string {
	if s, ok := anchorModeNames[m]; ok {
		return s
	}
	return "unknown"
}

// Or returns m, or def when m is AnchorsDefault.
func (m AnchorMode) Or(def AnchorMode) AnchorMode {
	if m == AnchorsDefault {
		return def
	}
	return m
}

// ParseAnchorMode parses "none", "existing" or "all". The empty string
// yields AnchorsDefault.
func ParseAnchorMode(s string) (AnchorMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return AnchorsDefault, nil
	}
	for m, n := range anchorModeNames {
		if n == name {
			return m, nil
		}
	}
	return AnchorsDefault, errors.New(errors.ErrCodeInvalidInput, "invalid anchor mode %q (use none, existing or all)", s)
}
