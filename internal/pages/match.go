package pages

import (
	"fmt"
	"strings"
)

// normalize collapses runs of whitespace and trims the ends
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// containsAny reports whether s contains any non-empty candidate,
// ignoring case and whitespace layout.
func containsAny(s string, candidates ...string) bool {
	haystack := strings.ToLower(normalize(s))
	for _, c := range candidates {
		c = strings.ToLower(normalize(c))
		if c == "" {
			continue
		}
		if strings.Contains(haystack, c) {
			return true
		}
	}
	return false
}

func describeText(candidates []string) string {
	var quoted []string
	for _, c := range candidates {
		if c != "" {
			quoted = append(quoted, fmt.Sprintf("%q", c))
		}
	}
	return "text containing " + strings.Join(quoted, " or ")
}
