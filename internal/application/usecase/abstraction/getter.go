package abstraction

import (
	"context"

	"inkwell/internal/domain/model"
)

// Getter defines the interface for retrieving media information.
type Getter interface {
	Get(ctx context.Context, key string) (*model.Media, error)
}
