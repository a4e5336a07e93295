package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inkwell/internal/domain/model"
)

type PostIndexRepository struct {
	db *Database
}

func NewPostIndexRepository(db *Database) *PostIndexRepository {
	return &PostIndexRepository{db: db}
}

func (p *PostIndexRepository) Replace(ctx context.Context, entry *model.PostIndexEntry) error {
	ctx, cancel := context.WithTimeout(ctx, p.db.QueryTimeout)
	defer cancel()

	coll := p.db.Client.Database(p.db.DBName).Collection(PostIndexCollection)
	_, err := coll.ReplaceOne(ctx, bson.M{"_id": entry.PostID}, entry, options.Replace().SetUpsert(true))

	return err
}

func (p *PostIndexRepository) RemovePost(ctx context.Context, postID string) error {
	ctx, cancel := context.WithTimeout(ctx, p.db.QueryTimeout)
	defer cancel()

	coll := p.db.Client.Database(p.db.DBName).Collection(PostIndexCollection)
	_, err := coll.DeleteOne(ctx, bson.M{"_id": postID})

	return err
}

func (p *PostIndexRepository) PostsReferencing(ctx context.Context, key string) ([]model.PostRef, error) {
	ctx, cancel := context.WithTimeout(ctx, p.db.QueryTimeout)
	defer cancel()

	coll := p.db.Client.Database(p.db.DBName).Collection(PostIndexCollection)

	cursor, err := coll.Find(ctx, bson.M{"media_keys": key},
		options.Find().SetProjection(bson.M{"_id": 1, "title": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []model.PostRef
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// ReferencedKeys reports which of the candidate keys appear in at least one
// index entry. One $in query; the intersection happens in memory.
func (p *PostIndexRepository) ReferencedKeys(ctx context.Context, keys []string) ([]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, p.db.QueryTimeout)
	defer cancel()

	coll := p.db.Client.Database(p.db.DBName).Collection(PostIndexCollection)

	cursor, err := coll.Find(ctx, bson.M{"media_keys": bson.M{"$in": keys}},
		options.Find().SetProjection(bson.M{"media_keys": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []struct {
		MediaKeys []string `bson:"media_keys"`
	}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	candidates := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		candidates[k] = struct{}{}
	}

	seen := make(map[string]struct{})
	var linked []string
	for _, entry := range entries {
		for _, k := range entry.MediaKeys {
			if _, want := candidates[k]; !want {
				continue
			}
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			linked = append(linked, k)
		}
	}

	return linked, nil
}
