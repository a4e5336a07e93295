package minio

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"
)

type Remover struct {
	minioClient *minio.Client
	cfg         *RemoverConfig
}

func NewRemover(minioClient *minio.Client, cfg *RemoverConfig) *Remover {
	return &Remover{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// Remove deletes an object. MinIO treats removal of a missing object as
// success, which keeps compensating deletes idempotent.
func (r *Remover) Remove(ctx context.Context, objectName string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Timeout)*time.Millisecond)
	defer cancel()

	return r.minioClient.RemoveObject(ctx, r.cfg.Bucket, objectName, minio.RemoveObjectOptions{})
}
