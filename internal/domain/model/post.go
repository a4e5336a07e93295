package model

import "time"

// PostIndexEntry is the inverted-index row recording which media keys a
// post's current body embeds. It is replaced in full on every post save.
type PostIndexEntry struct {
	PostID    string    `bson:"_id"`
	Title     string    `bson:"title"`
	MediaKeys []string  `bson:"media_keys"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// PostRef identifies a post that references a media key.
type PostRef struct {
	PostID string `bson:"_id"   json:"postId"`
	Title  string `bson:"title" json:"title"`
}
