// Package tags holds the free-form label handling shared by user skills,
// preferred job types and job skill requirements.
package tags

import "strings"

// Normalize trims, drops empties and deduplicates while keeping first-seen
// order. Case is preserved; matching folds case on its own.
func Normalize(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
