package usecase

import (
	"context"
	"fmt"
	"strings"

	"inkwell/internal/domain/repository/database"
)

// Renamer mutates a media item's display name. Catalog only, the blob store
// is never touched.
type Renamer struct {
	retriever database.Retriever
	renamer   database.Renamer
}

func NewRenamer(retriever database.Retriever, renamer database.Renamer) *Renamer {
	return &Renamer{
		retriever: retriever,
		renamer:   renamer,
	}
}

func (r *Renamer) Rename(ctx context.Context, key, fileName string) error {
	if strings.TrimSpace(fileName) == "" {
		return ErrEmptyName
	}

	if _, err := r.retriever.GetByKey(ctx, key); err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	if err := r.renamer.UpdateFileName(ctx, key, fileName); err != nil {
		return fmt.Errorf("update file name: %w", err)
	}

	return nil
}
