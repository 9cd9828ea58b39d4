package models

type SearchResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error,omitempty"`
	Files   []string `json:"files"`
}

type DocumentInfo struct {
	Filename  string `json:"filename"`
	Pages     int    `json:"pages"`
	SizeBytes int64  `json:"size_bytes"`
}
