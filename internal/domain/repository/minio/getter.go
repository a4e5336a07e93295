package minio

import "context"

type Getter interface {
	Exists(ctx context.Context, objectName string) (bool, error)
	Get(ctx context.Context, objectName string) ([]byte, error)
}
