package usecase

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"

	"inkwell/internal/domain/model"
	"inkwell/internal/domain/repository/broker"
	"inkwell/internal/domain/repository/database"
	"inkwell/internal/domain/repository/minio"
	"inkwell/pkg/logger"
	"inkwell/pkg/tasks"
)

// UploadFile is the caller-facing description of an upload. Size is always
// recomputed from Content, never trusted from the caller.
type UploadFile struct {
	Name    string
	Content []byte
}

type Uploader struct {
	publisher    broker.Publisher
	writer       database.Writer
	blobUploader minio.Uploader
	blobRemover  minio.Remover
	runner       *tasks.Runner
}

func NewUploader(publisher broker.Publisher, writer database.Writer,
	blobUploader minio.Uploader, blobRemover minio.Remover, runner *tasks.Runner,
) *Uploader {
	return &Uploader{
		publisher:    publisher,
		writer:       writer,
		blobUploader: blobUploader,
		blobRemover:  blobRemover,
		runner:       runner,
	}
}

// Upload writes the bytes to the blob store under a fresh key, then inserts
// the catalog row. When the insert fails after a successful put, a
// compensating blob removal is scheduled on the task runner so no orphaned
// blob is left behind silently.
func (u *Uploader) Upload(ctx context.Context, file UploadFile) (*model.Media, error) {
	if len(file.Content) == 0 {
		return nil, ErrEmptyFile
	}
	if strings.TrimSpace(file.Name) == "" {
		return nil, ErrEmptyName
	}

	key := uuid.New().String()

	result, err := u.blobUploader.UploadBytes(ctx, key, file.Name, file.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadTransport, err)
	}

	media := &model.Media{
		Key:      result.Key,
		URL:      result.URL,
		FileName: file.Name,
		MimeType: result.MimeType,
		Size:     int64(len(file.Content)),
		// The catalog stores times at millisecond precision; truncate here so
		// pagination cursors round-trip to the exact stored value.
		CreatedAt:  time.Now().UTC().Truncate(time.Millisecond),
		Dimensions: detectDimensions(result.MimeType, file.Content),
	}

	if err := u.writer.Insert(ctx, media); err != nil {
		logger.Error("catalog insert failed after blob upload", "key", key, "err", err)
		u.runner.Go("remove orphaned blob "+key, func(ctx context.Context) error {
			return u.blobRemover.Remove(ctx, result.Key)
		})

		return nil, fmt.Errorf("%w: %v", ErrCatalogInsert, err)
	}

	if err := u.publisher.Publish(ctx, "media.uploaded", key); err != nil {
		logger.Error("failed to notify search indexer", "key", key, "err", err)
	}

	return media, nil
}

func detectDimensions(mimeType string, content []byte) *model.Dimensions {
	if !strings.HasPrefix(mimeType, "image/") {
		return nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(content))
	if err != nil {
		return nil
	}

	return &model.Dimensions{Width: cfg.Width, Height: cfg.Height}
}
