package errors

import (
	"strings"
	"unicode"
)

// maxItemNameLength bounds item names accepted from manifests.
const maxItemNameLength = 256

// ValidateItemName validates the name of a manifest item.
//
// Names are identifiers that other items reference, so the rules are
// conservative:
//   - No empty names
//   - No leading or trailing whitespace
//   - No control characters (including null bytes)
//   - Maximum length of 256 characters
func ValidateItemName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "item name cannot be empty")
	}

	if len(name) > maxItemNameLength {
		return New(ErrCodeInvalidInput, "item name too long (max %d characters)", maxItemNameLength)
	}

	if strings.TrimSpace(name) != name {
		return New(ErrCodeInvalidInput, "item name %q has surrounding whitespace", name)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "item name contains invalid control characters")
		}
	}

	return nil
}

// ValidatePath validates a manifest path supplied by a user.
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

	for _, part := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}
