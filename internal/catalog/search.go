package catalog

import "strings"

// Filter keeps the entries of catalog that contain query, ignoring case.
// Order is preserved. An empty query returns the catalog unchanged.
func Filter(catalog []string, query string) []string {
	if query == "" {
		if catalog == nil {
			return []string{}
		}
		return catalog
	}

	q := strings.ToLower(query)
	out := make([]string, 0, len(catalog))
	for _, name := range catalog {
		if strings.Contains(strings.ToLower(name), q) {
			out = append(out, name)
		}
	}
	return out
}
