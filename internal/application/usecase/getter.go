package usecase

import (
	"context"
	"fmt"

	"inkwell/internal/domain/model"
	"inkwell/internal/domain/repository/database"
)

// Getter retrieves a single media item's catalog record.
type Getter struct {
	retriever database.Retriever
}

func NewGetter(retriever database.Retriever) *Getter {
	return &Getter{retriever: retriever}
}

func (g *Getter) Get(ctx context.Context, key string) (*model.Media, error) {
	media, err := g.retriever.GetByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	return media, nil
}
