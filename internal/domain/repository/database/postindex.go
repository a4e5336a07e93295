package database

import (
	"context"

	"inkwell/internal/domain/model"
)

// PostIndex stores which media keys each post's current body embeds and
// supports the inverse query.
type PostIndex interface {
	// Replace overwrites the index entry for entry.PostID in full; stale
	// keys no longer present in the post body are pruned by the overwrite.
	Replace(ctx context.Context, entry *model.PostIndexEntry) error
	RemovePost(ctx context.Context, postID string) error
	PostsReferencing(ctx context.Context, key string) ([]model.PostRef, error)
	// ReferencedKeys returns the subset of keys that appear in at least one
	// post's reference set, in a single query pass.
	ReferencedKeys(ctx context.Context, keys []string) ([]string, error)
}
