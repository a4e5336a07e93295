package entity

// UploadResult is what the blob store reports back after a confirmed put.
type UploadResult struct {
	Key      string `json:"key"`
	URL      string `json:"url"`
	MimeType string `json:"type"`
	Size     int64  `json:"size"`
}
