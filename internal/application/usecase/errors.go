package usecase

import "errors"

var (
	// ErrUploadTransport: the blob store rejected or failed the write. No
	// catalog row was created, no compensation is needed.
	ErrUploadTransport = errors.New("blob upload failed")

	// ErrCatalogInsert: the blob was stored but the catalog insert failed.
	// A compensating blob removal has been scheduled.
	ErrCatalogInsert = errors.New("catalog insert failed")

	ErrNotFound  = errors.New("media not found")
	ErrEmptyFile = errors.New("empty file")
	ErrEmptyName = errors.New("empty file name")
	ErrBadCursor = errors.New("malformed cursor")
)
