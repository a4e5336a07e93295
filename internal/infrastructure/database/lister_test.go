package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/domain/model"
	repo "inkwell/internal/domain/repository/database"
)

func seedMedia(t *testing.T, db *Database, n int) []model.Media {
	t.Helper()

	writer := NewMediaWriter(db)
	base := time.Now().UTC().Truncate(time.Millisecond)

	rows := make([]model.Media, 0, n)
	for i := 0; i < n; i++ {
		m := model.Media{
			Key:       fmt.Sprintf("seed-%04d-0000-0000-000000000000", i),
			URL:       fmt.Sprintf("http://localhost:8085/media/seed-%04d.png", i),
			FileName:  fmt.Sprintf("photo-%04d.png", i),
			MimeType:  "image/png",
			Size:      int64(100 + i),
			CreatedAt: base.Add(time.Duration(i) * time.Millisecond),
		}
		require.NoError(t, writer.Insert(context.Background(), &m))
		rows = append(rows, m)
	}

	return rows
}

func TestListCursorPagination(t *testing.T) {
	t.Parallel()
	db := connectTestDB(t)

	const total = 9
	seeded := seedMedia(t, db, total)
	lister := NewMediaLister(db)
	ctx := context.Background()

	var collected []model.Media
	var afterTime time.Time
	var afterKey string

	for {
		page, err := lister.List(ctx, repo.ListQuery{
			AfterTime: afterTime,
			AfterKey:  afterKey,
			Limit:     4,
		})
		require.NoError(t, err)
		if len(page) == 0 {
			break
		}

		collected = append(collected, page...)
		last := page[len(page)-1]
		afterTime, afterKey = last.CreatedAt, last.Key

		if len(page) < 4 {
			break
		}
	}

	require.Len(t, collected, total, "cursor pages must union to the full set")
	for i := range collected {
		assert.Equal(t, seeded[i].Key, collected[i].Key, "order must be (created_at, key)")
	}
}

func TestListTieBreakOnEqualTimestamps(t *testing.T) {
	t.Parallel()
	db := connectTestDB(t)

	writer := NewMediaWriter(db)
	lister := NewMediaLister(db)
	ctx := context.Background()

	ts := time.Now().UTC().Truncate(time.Millisecond)
	for _, key := range []string{"tie-b", "tie-a", "tie-c"} {
		require.NoError(t, writer.Insert(ctx, &model.Media{
			Key:       key,
			URL:       "http://localhost:8085/media/" + key + ".png",
			FileName:  key + ".png",
			MimeType:  "image/png",
			Size:      1,
			CreatedAt: ts,
		}))
	}

	first, err := lister.List(ctx, repo.ListQuery{Limit: 2})
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "tie-a", first[0].Key)
	assert.Equal(t, "tie-b", first[1].Key)

	rest, err := lister.List(ctx, repo.ListQuery{AfterTime: ts, AfterKey: "tie-b", Limit: 2})
	require.NoError(t, err)
	require.Len(t, rest, 1, "equal timestamps must not repeat or drop rows")
	assert.Equal(t, "tie-c", rest[0].Key)
}

func TestListSearch(t *testing.T) {
	t.Parallel()
	db := connectTestDB(t)

	seedMedia(t, db, 5)
	writer := NewMediaWriter(db)
	lister := NewMediaLister(db)
	ctx := context.Background()

	require.NoError(t, writer.Insert(ctx, &model.Media{
		Key:       "special-0000-0000-0000-000000000000",
		URL:       "http://localhost:8085/media/special.png",
		FileName:  "Special-Unique-File.png",
		MimeType:  "image/png",
		Size:      7,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}))

	page, err := lister.List(ctx, repo.ListQuery{Search: "special-unique"})
	require.NoError(t, err)
	require.Len(t, page, 1, "search is a case-insensitive substring match")
	assert.Equal(t, "Special-Unique-File.png", page[0].FileName)

	page, err = lister.List(ctx, repo.ListQuery{Search: "no-such-file"})
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestTotalSize(t *testing.T) {
	t.Parallel()
	db := connectTestDB(t)

	lister := NewMediaLister(db)
	ctx := context.Background()

	total, err := lister.TotalSize(ctx)
	require.NoError(t, err)
	assert.Zero(t, total, "empty catalog sums to 0")

	rows := seedMedia(t, db, 4)
	var want int64
	for _, r := range rows {
		want += r.Size
	}

	total, err = lister.TotalSize(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, total)
}
