package database

import (
	"context"

	"inkwell/internal/domain/model"
)

type Retriever interface {
	GetByKey(ctx context.Context, key string) (*model.Media, error)
}
