package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"reportviewer/pkg/models"
)

// ErrDirNotFound is returned by LocalScan when its directory is missing.
var ErrDirNotFound = errors.New("directory not found")

// EnglishRoute is where LocalScan's English files are served from.
const EnglishRoute = "/pdf/english/"

// LocalScan lists PDFs found directly in Dir.
type LocalScan struct {
	Dir string
}

func NewLocalScan(dir string) *LocalScan {
	return &LocalScan{Dir: dir}
}

func (s *LocalScan) Files() ([]string, error) {
	names, err := s.regularFiles()
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(names))
	for _, n := range names {
		if isPDF(n) {
			files = append(files, n)
		}
	}
	SortNames(files)
	return files, nil
}

// English checks for name alone in Dir; a present regular file (links
// followed) is served from the local English route.
func (s *LocalScan) English(name string) (models.LinkRecord, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return models.LinkRecord{}, nil
	}

	fi, err := os.Stat(filepath.Join(s.Dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.LinkRecord{}, nil
		}
		return models.LinkRecord{}, fmt.Errorf("stat %s: %w", name, err)
	}
	if !fi.Mode().IsRegular() {
		return models.LinkRecord{}, nil
	}

	u := LocalEnglishURL(name)
	return models.LinkRecord{
		Exists:      true,
		PreviewURL:  u,
		DownloadURL: u + "?download=1",
	}, nil
}

func (s *LocalScan) regularFiles() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", s.Dir, ErrDirNotFound)
		}
		return nil, fmt.Errorf("read dir %s: %w", s.Dir, err)
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		switch {
		case e.Type().IsRegular():
			out = append(out, e.Name())
		case e.Type()&fs.ModeSymlink != 0:
			// follow links, skip dangling ones
			if fi, err := os.Stat(filepath.Join(s.Dir, e.Name())); err == nil && fi.Mode().IsRegular() {
				out = append(out, e.Name())
			}
		}
	}
	return out, nil
}

// LocalEnglishURL is the path that streams name from the English directory.
func LocalEnglishURL(name string) string {
	return EnglishRoute + url.PathEscape(name)
}
