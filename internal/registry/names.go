package registry

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// separator joins suite and test name in IDs and output lines.
const separator = ":"

// canonicalName NFC-normalizes a suite or test name so that visually
// identical names map to the same key.
func canonicalName(s string) string {
	return norm.NFC.String(s)
}

// validateName rejects names that would make "suite:name" ambiguous or
// unreadable on a single output line.
func validateName(kind, s string) string {
	if s == "" {
		return kind + " name is empty"
	}
	if strings.Contains(s, separator) {
		return kind + " name contains " + separator
	}
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return kind + " name contains whitespace"
	}
	return ""
}

// JoinID returns the "suite:name" form used for lookup, filtering and output.
func JoinID(suite, name string) string {
	return suite + separator + name
}
