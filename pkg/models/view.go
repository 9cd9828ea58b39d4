package models

// ViewInfo is the merged availability of one report in both languages.
type ViewInfo struct {
	Filename string `json:"filename"`

	HindiExists      bool   `json:"hindi_exists"`
	HindiPreviewURL  string `json:"hindi_preview_url,omitempty"`
	HindiDownloadURL string `json:"hindi_download_url,omitempty"`

	EnglishExists      bool   `json:"english_exists"`
	EnglishPreviewURL  string `json:"english_preview_url,omitempty"`
	EnglishDownloadURL string `json:"english_download_url,omitempty"`
}
