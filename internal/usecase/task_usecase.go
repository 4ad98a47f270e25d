package usecase

import (
	"context"

	"rocktea/internal/domain/service"
)

// TaskUsecase processes the asynchronous task events the worker receives from
// the queue: transactional mail sends and DNS teardown.
type TaskUsecase interface {
	// HandleTask executes one task event. A returned error tells the worker
	// to answer non-2xx so the queue redelivers; unknown kinds are dropped
	// without error to stop pointless retries.
	HandleTask(ctx context.Context, event *service.TaskEvent) error
}
