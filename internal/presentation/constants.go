package presentation

const (
	KeyParam    = "key"
	PostIDParam = "id"
	FileField   = "file"
	ReasonTag   = "X-Reason"
)
