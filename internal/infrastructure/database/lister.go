package database

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inkwell/internal/domain/model"
	repo "inkwell/internal/domain/repository/database"
)

type MediaLister struct {
	db *Database
}

func NewMediaLister(db *Database) *MediaLister {
	return &MediaLister{db: db}
}

// List returns up to query.Limit rows ordered by (created_at, _id), starting
// strictly after the query's cursor pair.
func (l *MediaLister) List(ctx context.Context, query repo.ListQuery) ([]model.Media, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	filter := bson.M{}

	if query.Search != "" {
		filter["file_name"] = bson.M{
			"$regex":   regexp.QuoteMeta(query.Search),
			"$options": "i",
		}
	}

	if !query.AfterTime.IsZero() {
		filter["$or"] = bson.A{
			bson.M{"created_at": bson.M{"$gt": query.AfterTime}},
			bson.M{"created_at": query.AfterTime, "_id": bson.M{"$gt": query.AfterKey}},
		}
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	if query.Limit > 0 {
		findOpts.SetLimit(int64(query.Limit))
	}

	coll := l.db.Client.Database(l.db.DBName).Collection(MediaCollection)

	cursor, err := coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var media []model.Media
	if err := cursor.All(ctx, &media); err != nil {
		return nil, err
	}

	return media, nil
}

func (l *MediaLister) TotalSize(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.Client.Database(l.db.DBName).Collection(MediaCollection)

	cursor, err := coll.Aggregate(ctx, bson.A{
		bson.M{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$size"},
		}},
	})
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Total, nil
}
