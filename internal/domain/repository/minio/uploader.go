package minio

import (
	"context"

	"inkwell/internal/domain/entity"
)

type Uploader interface {
	UploadBytes(ctx context.Context, key, fileName string, content []byte) (entity.UploadResult, error)
}
