package model

import "time"

type Media struct {
	Key        string      `bson:"_id"`
	URL        string      `bson:"url"`
	FileName   string      `bson:"file_name"`
	MimeType   string      `bson:"mime_type"`
	Size       int64       `bson:"size"`
	Dimensions *Dimensions `bson:"dimensions"` // Pointer to allow null for non-image media
	CreatedAt  time.Time   `bson:"created_at"`
}

type Dimensions struct {
	Width  int `bson:"width"`
	Height int `bson:"height"`
}
