package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateGUID validates an element or relationship identifier supplied by a
// caller. Identifiers are opaque, so only safety rules are enforced:
//   - No empty identifiers
//   - No control characters
//   - Maximum length of 256 characters
func ValidateGUID(guid string) error {
	if guid == "" {
		return New(ErrCodeInvalidInput, "guid cannot be empty")
	}

	if len(guid) > 256 {
		return New(ErrCodeInvalidInput, "guid too long (max 256 characters)")
	}

	for _, r := range guid {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "guid contains invalid control characters")
		}
	}

	return nil
}

// kindRegex matches diagram kind names such as "supply-chain".
var kindRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidateKind validates the syntax of a diagram kind name. Whether the kind
// is registered is checked by the builder registry.
func ValidateKind(kind string) error {
	if kind == "" {
		return New(ErrCodeInvalidKind, "diagram kind cannot be empty")
	}
	if !kindRegex.MatchString(kind) {
		return New(ErrCodeInvalidKind, "invalid diagram kind: %q", kind)
	}
	return nil
}

// ValidatePath validates a file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	for _, part := range strings.Split(path, "/") {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}
