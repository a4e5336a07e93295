package abstraction

import (
	"context"

	"inkwell/internal/application/usecase"
	"inkwell/internal/domain/dto"
)

// Lister defines the interface for listing media.
type Lister interface {
	List(ctx context.Context, filter usecase.ListFilter) (dto.MediaPage, error)
	TotalSize(ctx context.Context) (int64, error)
}
