package dto

type MediaDescriptor struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	FileName    string `json:"fileName"`
	MimeType    string `json:"mimeType"`
	SizeInBytes int64  `json:"sizeInBytes"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	Uploaded    int64  `json:"uploaded"`
}

// MediaPage is one page of a cursor-paginated listing. An absent nextCursor
// means the result set is exhausted.
type MediaPage struct {
	Items      []MediaDescriptor `json:"items"`
	NextCursor string            `json:"nextCursor,omitempty"`
}
