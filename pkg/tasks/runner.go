package tasks

import (
	"context"
	"sync"
	"time"

	"github.com/sourcegraph/conc/panics"

	"inkwell/pkg/logger"
)

const defaultTimeout = 30 * time.Second

// Task is a deferred action. Its error is logged, never returned to the
// caller that scheduled it.
type Task func(ctx context.Context) error

// Runner executes deferred actions (compensating deletes, cleanup) off the
// request path. Tasks run on a context detached from the request so a caller
// that gave up does not cancel compensation.
type Runner struct {
	wg      sync.WaitGroup
	timeout time.Duration
}

func NewRunner(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Runner{timeout: timeout}
}

// Go schedules task and returns immediately.
func (r *Runner) Go(name string, task Task) {
	r.wg.Add(1)

	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		recovered := panics.Try(func() {
			if err := task(ctx); err != nil {
				logger.Error("background task failed", "task", name, "err", err)
			}
		})
		if recovered != nil {
			logger.Error("background task panicked", "task", name, "panic", recovered.Value)
		}
	}()
}

// Wait blocks until every task scheduled so far has finished. Used by tests
// and graceful shutdown, never on a request path.
func (r *Runner) Wait() {
	r.wg.Wait()
}
