package links

import (
	"errors"

	"reportviewer/pkg/models"
)

// ErrNotFound means the file is available in neither language.
var ErrNotFound = errors.New("file not available in any language")

// Resolve merges the Hindi and English records for filename. Each table is
// consulted independently, so conflicting flags are both reported as-is.
// When neither language exists the returned info is still populated and err
// is ErrNotFound.
func Resolve(filename string, hindi, english models.LinkTable) (models.ViewInfo, error) {
	h := hindi.Get(filename)
	e := english.Get(filename)

	info := models.ViewInfo{
		Filename:           filename,
		HindiExists:        h.Exists,
		HindiPreviewURL:    h.PreviewURL,
		HindiDownloadURL:   h.DownloadURL,
		EnglishExists:      e.Exists,
		EnglishPreviewURL:  e.PreviewURL,
		EnglishDownloadURL: e.DownloadURL,
	}

	if !info.HindiExists && !info.EnglishExists {
		return info, ErrNotFound
	}
	return info, nil
}
