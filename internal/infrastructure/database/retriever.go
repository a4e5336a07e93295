package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"inkwell/internal/domain/model"
)

type MediaRetriever struct {
	db *Database
}

func NewMediaRetriever(db *Database) *MediaRetriever {
	return &MediaRetriever{db: db}
}

func (r *MediaRetriever) GetByKey(ctx context.Context, key string) (*model.Media, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(MediaCollection)

	var media model.Media
	if err := coll.FindOne(ctx, bson.M{"_id": key}).Decode(&media); err != nil {
		return nil, err
	}

	return &media, nil
}
