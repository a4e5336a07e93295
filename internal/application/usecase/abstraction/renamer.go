package abstraction

import "context"

// Renamer defines the interface for renaming media.
type Renamer interface {
	Rename(ctx context.Context, key, fileName string) error
}
