// Package paths canonicalizes component prop names and walks nested
// prop data. Names arrive in either bracketed (user[address][city]) or
// dotted (user.address.city) notation; the dotted form is canonical.
package paths

import (
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

const Separator = "."

var normCache, _ = lru.New[string, string](10000)

// Normalize converts a prop name to its dotted form. Dotted input
// passes through unchanged, so the function is idempotent.
func Normalize(name string) string {
	if norm, ok := normCache.Get(name); ok {
		return norm
	}
	norm := name
	if strings.ContainsAny(name, "[]") {
		norm = strings.NewReplacer("[", Separator, "]", "").Replace(name)
	}
	normCache.Add(name, norm)
	return norm
}

// IsTopLevel reports whether a normalized name addresses a whole prop
// rather than a value nested inside one.
func IsTopLevel(norm string) bool {
	return !strings.Contains(norm, Separator)
}

// DeepGet walks props along a normalized path, descending through
// string-keyed objects and, for numeric segments, through slices.
// Absent intermediate or leaf keys yield (nil, false); an explicit nil
// stored at the leaf yields (nil, true).
func DeepGet(props map[string]any, norm string) (value any, ok bool) {
	var cur any = props
	for _, seg := range strings.Split(norm, Separator) {
		switch c := cur.(type) {
		case map[string]any:
			v, found := c[seg]
			if !found {
				return nil, false
			}
			cur = v
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(c) {
				return nil, false
			}
			cur = c[i]
		default:
			return nil, false
		}
	}
	return cur, true
}
