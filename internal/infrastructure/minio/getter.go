package minio

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

type Getter struct {
	minioClient *minio.Client
	cfg         *GetterConfig
}

func NewGetter(minioClient *minio.Client, cfg *GetterConfig) *Getter {
	return &Getter{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (g *Getter) Exists(ctx context.Context, objectName string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(g.cfg.Timeout)*time.Millisecond)
	defer cancel()

	_, err := g.minioClient.StatObject(ctx, g.cfg.Bucket, objectName, minio.StatObjectOptions{})
	if err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (g *Getter) Get(ctx context.Context, objectName string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(g.cfg.Timeout)*time.Millisecond)
	defer cancel()

	obj, err := g.minioClient.GetObject(ctx, g.cfg.Bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	return io.ReadAll(obj)
}
