package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

type MediaRenamer struct {
	db *Database
}

func NewMediaRenamer(db *Database) *MediaRenamer {
	return &MediaRenamer{db: db}
}

func (r *MediaRenamer) UpdateFileName(ctx context.Context, key, fileName string) error {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(MediaCollection)
	_, err := coll.UpdateOne(ctx, bson.M{"_id": key}, bson.M{"$set": bson.M{"file_name": fileName}})

	return err
}
