package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// Page identifies one virtual page in a reference string.
type Page int

// ParseReferences turns a whitespace- or comma-separated list of integers into a
// reference string. Blank input yields an empty (non-nil) slice.
func ParseReferences(s string) ([]Page, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	refs := make([]Page, 0, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q is not an integer", ErrInvalidReference, i+1, f)
		}
		refs = append(refs, Page(n))
	}
	return refs, nil
}

// FormatReferences renders a reference string the way ParseReferences accepts it.
func FormatReferences(refs []Page) string {
	parts := make([]string, len(refs))
	for i, p := range refs {
		parts[i] = strconv.Itoa(int(p))
	}
	return strings.Join(parts, " ")
}

// DistinctPages returns the number of different pages in refs.
func DistinctPages(refs []Page) int {
	seen := make(map[Page]struct{}, len(refs))
	for _, p := range refs {
		seen[p] = struct{}{}
	}
	return len(seen)
}
