// Package pdfinfo reads basic facts about local PDF files with pdfcpu.
package pdfinfo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"reportviewer/pkg/models"
)

// ErrUnreadable wraps pdfcpu failures on a file that exists.
var ErrUnreadable = errors.New("unreadable pdf")

func init() {
	// keep pdfcpu from creating a config dir under $HOME
	api.DisableConfigDir()
}

// Inspect returns the page count and size of the PDF at path. A missing file
// yields an error satisfying errors.Is(err, fs.ErrNotExist).
func Inspect(path string) (models.DocumentInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.DocumentInfo{}, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return models.DocumentInfo{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if !st.Mode().IsRegular() {
		return models.DocumentInfo{}, fmt.Errorf("%s: not a regular file: %w", path, ErrUnreadable)
	}

	conf := model.NewDefaultConfiguration()
	pages, err := api.PageCount(f, conf)
	if err != nil {
		return models.DocumentInfo{}, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	return models.DocumentInfo{
		Filename:  filepath.Base(path),
		Pages:     pages,
		SizeBytes: st.Size(),
	}, nil
}
