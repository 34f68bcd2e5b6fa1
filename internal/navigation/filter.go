package navigation

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter returns the names containing query under Unicode case folding,
// keeping their order. A blank query returns a copy of names.
func Filter(names []string, query string) []string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return append([]string(nil), names...)
	}
	fold := cases.Fold()
	needle := fold.String(trimmed)
	out := make([]string, 0, len(names))
	for _, name := range names {
		if strings.Contains(fold.String(name), needle) {
			out = append(out, name)
		}
	}
	return out
}
