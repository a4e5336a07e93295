package abstraction

import (
	"context"

	"inkwell/internal/domain/document"
	"inkwell/internal/domain/model"
)

// Linker defines the interface for the post→media reference index.
type Linker interface {
	IndexPost(ctx context.Context, postID, title string, body document.Node) error
	InUse(ctx context.Context, key string) (bool, error)
	LinkedPosts(ctx context.Context, key string) ([]model.PostRef, error)
	LinkedKeys(ctx context.Context, keys []string) ([]string, error)
}
