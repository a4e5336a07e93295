package usecase

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"inkwell/internal/domain/dto"
	"inkwell/internal/domain/model"
	"inkwell/internal/domain/repository/database"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListFilter is the caller-facing listing request. Limits outside (0, max]
// are clamped by the engine, not rejected.
type ListFilter struct {
	Search string
	Cursor string
	Limit  int
}

type Lister struct {
	lister database.Lister
}

func NewLister(lister database.Lister) *Lister {
	return &Lister{lister: lister}
}

// List returns one page ordered by (created_at, key). The page size is
// requested as limit+1 so exhaustion is detected exactly: a page with no
// NextCursor is the last one.
func (l *Lister) List(ctx context.Context, filter ListFilter) (dto.MediaPage, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	after, err := decodeCursor(filter.Cursor)
	if err != nil {
		return dto.MediaPage{}, fmt.Errorf("%w: %v", ErrBadCursor, err)
	}

	rows, err := l.lister.List(ctx, database.ListQuery{
		Search:    filter.Search,
		AfterTime: after.CreatedAt,
		AfterKey:  after.Key,
		Limit:     limit + 1,
	})
	if err != nil {
		return dto.MediaPage{}, fmt.Errorf("list media: %w", err)
	}

	more := len(rows) > limit
	if more {
		rows = rows[:limit]
	}

	page := dto.MediaPage{Items: make([]dto.MediaDescriptor, 0, len(rows))}
	for i := range rows {
		page.Items = append(page.Items, toDescriptor(&rows[i]))
	}

	if more {
		last := rows[len(rows)-1]
		page.NextCursor = encodeCursor(cursor{CreatedAt: last.CreatedAt, Key: last.Key})
	}

	return page, nil
}

// TotalSize sums size across all catalog rows, 0 for an empty catalog.
func (l *Lister) TotalSize(ctx context.Context) (int64, error) {
	total, err := l.lister.TotalSize(ctx)
	if err != nil {
		return 0, fmt.Errorf("total media size: %w", err)
	}

	return total, nil
}

// cursor is the decoded form of the opaque pagination token: the ordering
// pair of the last row on the previous page.
type cursor struct {
	CreatedAt time.Time `json:"t"`
	Key       string    `json:"k"`
}

func encodeCursor(c cursor) string {
	raw, _ := json.Marshal(c)

	return base64.RawURLEncoding.EncodeToString(raw)
}

func decodeCursor(token string) (cursor, error) {
	if token == "" {
		return cursor{}, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return cursor{}, err
	}

	var c cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return cursor{}, err
	}

	return c, nil
}

func toDescriptor(m *model.Media) dto.MediaDescriptor {
	d := dto.MediaDescriptor{
		Key:         m.Key,
		URL:         m.URL,
		FileName:    m.FileName,
		MimeType:    m.MimeType,
		SizeInBytes: m.Size,
		Uploaded:    m.CreatedAt.Unix(),
	}
	if m.Dimensions != nil {
		d.Width = m.Dimensions.Width
		d.Height = m.Dimensions.Height
	}

	return d
}
