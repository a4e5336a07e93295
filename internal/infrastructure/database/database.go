package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	MediaCollection     = "media"
	PostIndexCollection = "post_media"
)

type Config struct {
	URI               string
	DBName            string `yaml:"db_name"`
	ConnectionTimeout int64  `yaml:"connection_timeout_in_ms"`
	QueryTimeout      int64  `yaml:"query_timeout_in_ms"`
}

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			NilSliceAsEmpty: true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initMediaCollection(db); err != nil {
		return nil, err
	}
	if err := initPostIndexCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func initMediaCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": MediaCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "url", "file_name", "mime_type", "size", "created_at"},
			"properties": bson.M{
				"_id": bson.M{
					"bsonType":    "string",
					"minLength":   1,
					"description": "opaque media key, also the blob object name",
				},
				"url":       bson.M{"bsonType": "string"},
				"file_name": bson.M{"bsonType": "string", "minLength": 1},
				"mime_type": bson.M{"bsonType": "string"},
				"size": bson.M{
					"bsonType": "long",
					"minimum":  0,
				},
				"dimensions": bson.M{
					"bsonType": []string{"object", "null"},
					"properties": bson.M{
						"width":  bson.M{"bsonType": "int"},
						"height": bson.M{"bsonType": "int"},
					},
				},
				"created_at": bson.M{"bsonType": "date"},
			},
		},
	})

	err = db.Client.Database(db.DBName).CreateCollection(ctx, MediaCollection, collOpts)
	if err != nil {
		return err
	}
	coll := db.Client.Database(db.DBName).Collection(MediaCollection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}},
	})

	return err
}

func initPostIndexCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": PostIndexCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	if err := db.Client.Database(db.DBName).CreateCollection(ctx, PostIndexCollection); err != nil {
		return err
	}

	coll := db.Client.Database(db.DBName).Collection(PostIndexCollection)
	// Multikey index serving both the reverse lookup and the batched
	// membership check.
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "media_keys", Value: 1}},
	})

	return err
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
