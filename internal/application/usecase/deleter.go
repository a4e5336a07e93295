package usecase

import (
	"context"
	"fmt"

	"inkwell/internal/domain/repository/broker"
	"inkwell/internal/domain/repository/database"
	"inkwell/internal/domain/repository/minio"
	"inkwell/pkg/logger"
	"inkwell/pkg/tasks"
)

// Deleter removes media. The catalog row is the durability boundary; the
// blob itself is removed as a background task.
type Deleter struct {
	publisher   broker.Publisher
	retriever   database.Retriever
	dbRemover   database.Remover
	blobRemover minio.Remover
	runner      *tasks.Runner
}

func NewDeleter(publisher broker.Publisher, retriever database.Retriever,
	dbRemover database.Remover, blobRemover minio.Remover, runner *tasks.Runner,
) *Deleter {
	return &Deleter{
		publisher:   publisher,
		retriever:   retriever,
		dbRemover:   dbRemover,
		blobRemover: blobRemover,
		runner:      runner,
	}
}

// Delete removes the catalog row for key, then schedules blob removal. A
// blob-removal failure leaves a dangling blob with no catalog entry, which is
// accepted garbage; the inverse is not and never happens on this path.
func (d *Deleter) Delete(ctx context.Context, key string) error {
	if _, err := d.retriever.GetByKey(ctx, key); err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	if err := d.dbRemover.RemoveByKey(ctx, key); err != nil {
		return fmt.Errorf("remove catalog row: %w", err)
	}

	d.runner.Go("remove blob "+key, func(ctx context.Context) error {
		return d.blobRemover.Remove(ctx, key)
	})

	if err := d.publisher.Publish(ctx, "media.deleted", key); err != nil {
		logger.Error("failed to notify search indexer", "key", key, "err", err)
	}

	return nil
}
