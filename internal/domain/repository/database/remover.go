package database

import "context"

type Remover interface {
	RemoveByKey(ctx context.Context, key string) error
}
