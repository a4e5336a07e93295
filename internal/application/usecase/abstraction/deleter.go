package abstraction

import "context"

// Deleter defines the interface for deleting media.
type Deleter interface {
	Delete(ctx context.Context, key string) error
}
