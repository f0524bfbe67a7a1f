package worker

import (
	"context"
	"time"

	"github.com/Abraxas-365/sift/pkg/logx"
	"github.com/Abraxas-365/sift/screening/screener"
	"github.com/Abraxas-365/sift/screening/screener/screenersrv"
)

const (
	dequeueTimeout     = 5 * time.Second
	delayedScanPeriod  = 30 * time.Second
	defaultConcurrency = 3
)

// Worker drains the screening queue with a pool of goroutines and
// periodically promotes delayed retries back onto the ready queue
type Worker struct {
	service     *screenersrv.Service
	queue       screener.JobQueue
	concurrency int
}

func New(service *screenersrv.Service, queue screener.JobQueue, concurrency int) *Worker {
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}
	return &Worker{
		service:     service,
		queue:       queue,
		concurrency: concurrency,
	}
}

// Start launches the worker goroutines. They stop when ctx is
// cancelled.
func (w *Worker) Start(ctx context.Context) {
	logx.Infof("Starting screening workers: concurrency=%d", w.concurrency)

	go w.moveDelayedJobs(ctx)

	for i := 0; i < w.concurrency; i++ {
		go w.processJobs(ctx, i)
	}
}

func (w *Worker) processJobs(ctx context.Context, workerID int) {
	logx.Infof("Screening worker %d started", workerID)

	for {
		select {
		case <-ctx.Done():
			logx.Infof("Screening worker %d stopping", workerID)
			return
		default:
		}

		job, err := w.queue.Dequeue(ctx, dequeueTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logx.Errorf("Worker %d dequeue failed: %v", workerID, err)
			time.Sleep(time.Second)
			continue
		}
		if job == nil {
			// Queue empty, poll again
			continue
		}

		if err := w.service.ProcessScreeningJob(ctx, job); err != nil {
			// Retry scheduling already happened inside the service
			logx.Warnf("Worker %d: screening %s attempt failed: %v", workerID, job.ScreeningID, err)
		}
	}
}

// moveDelayedJobs periodically promotes due retries
func (w *Worker) moveDelayedJobs(ctx context.Context) {
	ticker := time.NewTicker(delayedScanPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			moved, err := w.queue.MoveDelayedToReady(ctx)
			if err != nil {
				logx.Errorf("Failed to move delayed screenings: %v", err)
				continue
			}
			if moved > 0 {
				logx.Infof("Moved %d delayed screenings to ready queue", moved)
			}
		}
	}
}
