package util

import "strings"

// NormalizeSet lowercases and trims every entry and drops empties and
// duplicates. Matching and eligibility checks compare normalized sets so
// the comparison rule lives in one place.
func NormalizeSet(values []string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		out[v] = struct{}{}
	}
	return out
}

// ContainsAll reports whether set is a superset of required.
func ContainsAll(set, required map[string]struct{}) bool {
	for k := range required {
		if _, ok := set[k]; !ok {
			return false
		}
	}
	return true
}
