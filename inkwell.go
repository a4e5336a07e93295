package inkwell

import "fmt"

// Semantic version of the media service.
const (
	major = 0
	minor = 3
	patch = 1
)

func StringVersion() string {
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}
