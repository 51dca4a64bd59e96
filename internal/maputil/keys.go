// Package maputil provides shared helpers for deterministic map iteration.
package maputil

import "sort"

// SortedKeys returns the keys of m sorted lexicographically.
// Returns an empty slice (never nil) for empty or nil maps so callers can
// range without a nil check.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
