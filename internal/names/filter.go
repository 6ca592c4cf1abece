package names

import "strings"

// Filter returns the entries of names whose lowercase form contains the
// lowercase query, in their original order. An empty query matches
// everything. The result never aliases the input slice.
func Filter(names []string, query string) []string {
	out := make([]string, 0, len(names))
	if query == "" {
		return append(out, names...)
	}

	needle := strings.ToLower(query)
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), needle) {
			out = append(out, name)
		}
	}
	return out
}
