package usecase_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"

	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/model"
	repo "inkwell/internal/domain/repository/database"
	"inkwell/pkg/utils"
)

const testPublicAddress = "http://cdn.test/media"

// memoryBlobStore is an in-memory stand-in for the MinIO adapter.
type memoryBlobStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	failPut bool
}

func newMemoryBlobStore() *memoryBlobStore {
	return &memoryBlobStore{objects: make(map[string][]byte)}
}

func (s *memoryBlobStore) UploadBytes(_ context.Context, key, _ string, content []byte,
) (entity.UploadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failPut {
		return entity.UploadResult{}, errors.New("simulated transport failure")
	}

	detected := mimetype.Detect(content).String()
	s.objects[key] = append([]byte(nil), content...)

	return entity.UploadResult{
		Key:      key,
		URL:      utils.PublicURL(testPublicAddress, key, detected),
		MimeType: detected,
		Size:     int64(len(content)),
	}, nil
}

// Remove mirrors the blob store contract: removing a missing key succeeds.
func (s *memoryBlobStore) Remove(_ context.Context, objectName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.objects, objectName)

	return nil
}

func (s *memoryBlobStore) contains(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.objects[key]

	return ok
}

// memoryCatalog implements the catalog repository interfaces over a map.
type memoryCatalog struct {
	mu         sync.Mutex
	rows       map[string]model.Media
	failInsert bool
}

func newMemoryCatalog() *memoryCatalog {
	return &memoryCatalog{rows: make(map[string]model.Media)}
}

func (c *memoryCatalog) Insert(_ context.Context, media *model.Media) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.failInsert {
		return errors.New("simulated insert failure")
	}
	if _, exists := c.rows[media.Key]; exists {
		return errors.New("duplicate key")
	}

	c.rows[media.Key] = *media

	return nil
}

func (c *memoryCatalog) GetByKey(_ context.Context, key string) (*model.Media, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	row, ok := c.rows[key]
	if !ok {
		return nil, errors.New("no documents in result")
	}

	return &row, nil
}

func (c *memoryCatalog) RemoveByKey(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.rows, key)

	return nil
}

func (c *memoryCatalog) UpdateFileName(_ context.Context, key, fileName string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	row, ok := c.rows[key]
	if !ok {
		return nil // matches UpdateOne semantics: no match, no error
	}
	row.FileName = fileName
	c.rows[key] = row

	return nil
}

func (c *memoryCatalog) List(_ context.Context, query repo.ListQuery) ([]model.Media, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	all := make([]model.Media, 0, len(c.rows))
	for _, row := range c.rows {
		all = append(all, row)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}

		return all[i].Key < all[j].Key
	})

	var out []model.Media
	for _, row := range all {
		if query.Search != "" &&
			!strings.Contains(strings.ToLower(row.FileName), strings.ToLower(query.Search)) {
			continue
		}
		if !query.AfterTime.IsZero() {
			if row.CreatedAt.Before(query.AfterTime) {
				continue
			}
			if row.CreatedAt.Equal(query.AfterTime) && row.Key <= query.AfterKey {
				continue
			}
		}
		out = append(out, row)
		if query.Limit > 0 && len(out) == query.Limit {
			break
		}
	}

	return out, nil
}

func (c *memoryCatalog) TotalSize(_ context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int64
	for _, row := range c.rows {
		total += row.Size
	}

	return total, nil
}

// memoryPostIndex implements the post→media index over a map.
type memoryPostIndex struct {
	mu      sync.Mutex
	entries map[string]model.PostIndexEntry
}

func newMemoryPostIndex() *memoryPostIndex {
	return &memoryPostIndex{entries: make(map[string]model.PostIndexEntry)}
}

func (p *memoryPostIndex) Replace(_ context.Context, entry *model.PostIndexEntry) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.entries[entry.PostID] = *entry

	return nil
}

func (p *memoryPostIndex) RemovePost(_ context.Context, postID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.entries, postID)

	return nil
}

func (p *memoryPostIndex) PostsReferencing(_ context.Context, key string) ([]model.PostRef, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var posts []model.PostRef
	for _, entry := range p.entries {
		for _, k := range entry.MediaKeys {
			if k == key {
				posts = append(posts, model.PostRef{PostID: entry.PostID, Title: entry.Title})

				break
			}
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].PostID < posts[j].PostID })

	return posts, nil
}

func (p *memoryPostIndex) ReferencedKeys(_ context.Context, keys []string) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	candidates := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		candidates[k] = struct{}{}
	}

	seen := make(map[string]struct{})
	var linked []string
	for _, entry := range p.entries {
		for _, k := range entry.MediaKeys {
			if _, want := candidates[k]; !want {
				continue
			}
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			linked = append(linked, k)
		}
	}
	sort.Strings(linked)

	return linked, nil
}

// recordingPublisher captures notifications instead of hitting Redis.
type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingPublisher) Publish(_ context.Context, action, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, action+":"+key)

	return nil
}
