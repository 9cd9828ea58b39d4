// Package catalog builds the list of report files offered on the landing
// page and the English availability table that goes with it.
package catalog

import (
	"sort"
	"strings"

	"reportviewer/pkg/models"
)

const pdfExt = ".pdf"

// Source is one way of deciding which reports exist.
type Source interface {
	// Files returns the catalog, sorted case-insensitively.
	Files() ([]string, error)
	// English returns the English availability record for one file. An
	// unknown file yields the zero record, not an error.
	English(name string) (models.LinkRecord, error)
}

func isPDF(name string) bool {
	return strings.HasSuffix(name, pdfExt)
}

// SortNames sorts names case-insensitively in place. Names that differ only
// in case are ordered by their raw bytes so the result is deterministic.
func SortNames(names []string) {
	sort.Slice(names, func(i, j int) bool {
		a, b := strings.ToLower(names[i]), strings.ToLower(names[j])
		if a != b {
			return a < b
		}
		return names[i] < names[j]
	})
}
