package minio

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"

	"inkwell/internal/domain/entity"
	"inkwell/pkg/utils"
)

type Uploader struct {
	minioClient *minio.Client
	cfg         *UploaderConfig
}

func NewUploader(minioClient *minio.Client, config *UploaderConfig) *Uploader {
	return &Uploader{
		minioClient: minioClient,
		cfg:         config,
	}
}

// UploadBytes stores content under key and reports the confirmed result. The
// MIME type is detected from the bytes, not taken from the caller, and the
// public URL is derived from it.
func (u *Uploader) UploadBytes(ctx context.Context, key, fileName string, content []byte,
) (entity.UploadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	detectedMIME := mimetype.Detect(content).String()

	_, err := u.minioClient.PutObject(ctx, u.cfg.Bucket, key, bytes.NewReader(content),
		int64(len(content)), minio.PutObjectOptions{
			ContentType:  detectedMIME,
			UserMetadata: map[string]string{"file-name": fileName},
		})
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("put object %s: %w", key, err)
	}

	return entity.UploadResult{
		Key:      key,
		URL:      utils.PublicURL(u.cfg.PublicAddress, key, detectedMIME),
		MimeType: detectedMIME,
		Size:     int64(len(content)),
	}, nil
}
