package database

import (
	"context"
	"time"

	"inkwell/internal/domain/model"
)

// ListQuery selects a page of catalog rows ordered by (created_at, key).
// A zero AfterTime means "from the start"; otherwise only rows strictly
// after the (AfterTime, AfterKey) pair are returned.
type ListQuery struct {
	Search    string
	AfterTime time.Time
	AfterKey  string
	Limit     int
}

// Lister defines the catalog listing queries.
type Lister interface {
	List(ctx context.Context, query ListQuery) ([]model.Media, error)
	TotalSize(ctx context.Context) (int64, error)
}
