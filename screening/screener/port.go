package screener

import (
	"context"
	"time"

	"github.com/Abraxas-365/sift/pkg/kernel"
)

// Repository persists screening records
type Repository interface {
	Create(ctx context.Context, screening *Screening) error
	GetByID(ctx context.Context, id kernel.ScreeningID) (*Screening, error)
	Update(ctx context.Context, screening *Screening) error
	Delete(ctx context.Context, id kernel.ScreeningID) error
	ListByRequester(ctx context.Context, requesterID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[Screening], error)
	ListByBatch(ctx context.Context, batchID kernel.BatchID) ([]Screening, error)
}

// JobQueue feeds the worker pool with pending screenings
type JobQueue interface {
	// Enqueue pushes a job for immediate processing
	Enqueue(ctx context.Context, job *ScreeningJob) error

	// Dequeue blocks up to timeout for the next job. Returns
	// (nil, nil) when the timeout elapses with an empty queue.
	Dequeue(ctx context.Context, timeout time.Duration) (*ScreeningJob, error)

	// EnqueueDelayed schedules a job to become ready after delay
	EnqueueDelayed(ctx context.Context, job *ScreeningJob, delay time.Duration) error

	// MoveDelayedToReady promotes due delayed jobs onto the ready queue
	MoveDelayedToReady(ctx context.Context) (int, error)

	QueueSize(ctx context.Context) (int64, error)
	DelayedSize(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}
