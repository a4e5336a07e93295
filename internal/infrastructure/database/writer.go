package database

import (
	"context"

	"inkwell/internal/domain/model"
)

type MediaWriter struct {
	db *Database
}

func NewMediaWriter(db *Database) *MediaWriter {
	return &MediaWriter{db: db}
}

func (w *MediaWriter) Insert(ctx context.Context, media *model.Media) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(MediaCollection)

	_, err := coll.InsertOne(ctx, media)

	return err
}
