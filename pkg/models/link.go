package models

// LinkRecord is one language's availability entry for a single report file.
// It is keyed by filename inside a LinkTable.
type LinkRecord struct {
	Exists      bool   `json:"exists"`
	PreviewURL  string `json:"preview_url,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
}

// LinkTable maps filename -> LinkRecord for one language.
// Keys are case-sensitive.
type LinkTable map[string]LinkRecord

// Get returns the record for name, or the zero record when absent.
func (t LinkTable) Get(name string) LinkRecord {
	if t == nil {
		return LinkRecord{}
	}
	return t[name]
}
