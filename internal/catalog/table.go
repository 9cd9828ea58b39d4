package catalog

import (
	"reportviewer/pkg/models"
)

// TableLoader reads a link table; *links.Loader satisfies it.
type TableLoader interface {
	Load(path string) models.LinkTable
}

// TableDriven takes the catalog from the English link table: every ".pdf"
// key whose record says it exists.
type TableDriven struct {
	Path   string
	Loader TableLoader
}

func NewTableDriven(path string, loader TableLoader) *TableDriven {
	return &TableDriven{Path: path, Loader: loader}
}

func (s *TableDriven) Files() ([]string, error) {
	table := s.Loader.Load(s.Path)

	files := make([]string, 0, len(table))
	for name, rec := range table {
		if rec.Exists && isPDF(name) {
			files = append(files, name)
		}
	}
	SortNames(files)
	return files, nil
}

func (s *TableDriven) English(name string) (models.LinkRecord, error) {
	return s.Loader.Load(s.Path).Get(name), nil
}
