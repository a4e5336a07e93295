package database

import (
	"context"

	"inkwell/internal/domain/model"
)

type Writer interface {
	Insert(ctx context.Context, media *model.Media) error
}
