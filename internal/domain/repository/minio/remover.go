package minio

import "context"

// Remover deletes an object from the blob store. Removing a key that does
// not exist is not an error.
type Remover interface {
	Remove(ctx context.Context, objectName string) error
}
