package database

import "context"

type Renamer interface {
	UpdateFileName(ctx context.Context, key, fileName string) error
}
