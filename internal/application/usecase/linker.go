package usecase

import (
	"context"
	"fmt"
	"time"

	"inkwell/internal/domain/document"
	"inkwell/internal/domain/model"
	"inkwell/internal/domain/repository/database"
)

// Linker maintains the post→media reference index and answers "is this media
// in use" queries from it.
type Linker struct {
	scanner *document.Scanner
	index   database.PostIndex
}

func NewLinker(scanner *document.Scanner, index database.PostIndex) *Linker {
	return &Linker{
		scanner: scanner,
		index:   index,
	}
}

// IndexPost scans the post body and replaces the post's index entry in full,
// pruning keys the new body no longer embeds. Runs synchronously on every
// post save.
func (l *Linker) IndexPost(ctx context.Context, postID, title string, body document.Node) error {
	keys := l.scanner.MediaKeys(body)
	if len(keys) == 0 {
		if err := l.index.RemovePost(ctx, postID); err != nil {
			return fmt.Errorf("prune post index: %w", err)
		}

		return nil
	}

	entry := &model.PostIndexEntry{
		PostID:    postID,
		Title:     title,
		MediaKeys: keys,
		UpdatedAt: time.Now().UTC(),
	}
	if err := l.index.Replace(ctx, entry); err != nil {
		return fmt.Errorf("replace post index: %w", err)
	}

	return nil
}

func (l *Linker) InUse(ctx context.Context, key string) (bool, error) {
	keys, err := l.index.ReferencedKeys(ctx, []string{key})
	if err != nil {
		return false, fmt.Errorf("check media usage: %w", err)
	}

	return len(keys) > 0, nil
}

func (l *Linker) LinkedPosts(ctx context.Context, key string) ([]model.PostRef, error) {
	posts, err := l.index.PostsReferencing(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("linked posts: %w", err)
	}

	return posts, nil
}

// LinkedKeys is a batched membership check: of the candidate keys, which are
// embedded in at least one post. One index pass regardless of len(keys).
func (l *Linker) LinkedKeys(ctx context.Context, keys []string) ([]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	linked, err := l.index.ReferencedKeys(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("linked keys: %w", err)
	}

	return linked, nil
}
