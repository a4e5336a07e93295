package broker

import "context"

// Publisher notifies the search-indexing subsystem about catalog changes.
// Fire and forget: callers log publish failures, nothing more.
type Publisher interface {
	Publish(ctx context.Context, action, key string) error
}
