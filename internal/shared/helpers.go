// Package shared provides common utility functions used across multiple
// packages in the ipxact-gen codebase.
package shared

import (
	"strings"
	"unicode"
)

// SanitizeIdentifier makes a metadata name safe to emit as a source
// identifier: every character outside [A-Za-z0-9_] becomes an
// underscore, and a leading digit gets an underscore prefix.
func SanitizeIdentifier(value string) string {
	var builder strings.Builder
	for _, r := range strings.TrimSpace(value) {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
			continue
		}
		builder.WriteRune('_')
	}
	out := builder.String()
	if out == "" {
		return "_"
	}
	if unicode.IsDigit(rune(out[0])) {
		return "_" + out
	}
	return out
}

// UpperCamel converts a metadata name to an UpperCamelCase type name,
// splitting on underscores, hyphens and dots.
func UpperCamel(value string) string {
	sanitized := SanitizeIdentifier(strings.NewReplacer("-", "_", ".", "_").Replace(strings.TrimSpace(value)))
	parts := strings.Split(sanitized, "_")
	var builder strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		builder.WriteString(strings.ToUpper(part[:1]))
		builder.WriteString(strings.ToLower(part[1:]))
	}
	if builder.Len() == 0 {
		return "_"
	}
	return builder.String()
}

// LowerIdentifier lowercases a sanitized name for use as a field name.
func LowerIdentifier(value string) string {
	return strings.ToLower(SanitizeIdentifier(value))
}
