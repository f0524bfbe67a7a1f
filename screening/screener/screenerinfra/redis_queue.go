package screenerinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abraxas-365/sift/screening/screener"
	"github.com/go-redis/redis/v8"
)

// RedisQueue implements the JobQueue port on a Redis list plus a
// sorted set for delayed retries
type RedisQueue struct {
	client    *redis.Client
	queueName string
}

// NewRedisQueue creates a new Redis-based screening queue
func NewRedisQueue(client *redis.Client, queueName string) screener.JobQueue {
	return &RedisQueue{
		client:    client,
		queueName: queueName,
	}
}

// Enqueue adds a job to the ready queue
func (q *RedisQueue) Enqueue(ctx context.Context, job *screener.ScreeningJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job %s: %w", job.ScreeningID, err)
	}

	if err := q.client.LPush(ctx, q.queueName, data).Err(); err != nil {
		return fmt.Errorf("enqueue job %s: %w", job.ScreeningID, err)
	}

	return nil
}

// Dequeue pops the next job, blocking up to timeout. Returns
// (nil, nil) when the queue stays empty for the whole timeout.
func (q *RedisQueue) Dequeue(ctx context.Context, timeout time.Duration) (*screener.ScreeningJob, error) {
	result, err := q.client.BRPop(ctx, timeout, q.queueName).Result()
	if err != nil {
		// redis.Nil is returned when the timeout elapses
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("dequeue job: %w", err)
	}

	if len(result) < 2 {
		return nil, fmt.Errorf("invalid result from queue: expected 2 elements, got %d", len(result))
	}

	var job screener.ScreeningJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		return nil, fmt.Errorf("unmarshal job payload: %w", err)
	}

	return &job, nil
}

// EnqueueDelayed schedules a job for later processing (retries)
func (q *RedisQueue) EnqueueDelayed(ctx context.Context, job *screener.ScreeningJob, delay time.Duration) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal delayed job %s: %w", job.ScreeningID, err)
	}

	score := float64(time.Now().Add(delay).Unix())

	if err := q.client.ZAdd(ctx, q.delayedName(), &redis.Z{
		Score:  score,
		Member: data,
	}).Err(); err != nil {
		return fmt.Errorf("enqueue delayed job %s: %w", job.ScreeningID, err)
	}

	return nil
}

// MoveDelayedToReady promotes due delayed jobs onto the ready queue
func (q *RedisQueue) MoveDelayedToReady(ctx context.Context) (int, error) {
	now := float64(time.Now().Unix())

	jobs, err := q.client.ZRangeByScore(ctx, q.delayedName(), &redis.ZRangeBy{
		Min: "-inf",
		Max: fmt.Sprintf("%f", now),
	}).Result()
	if err != nil {
		return 0, fmt.Errorf("get delayed jobs: %w", err)
	}

	if len(jobs) == 0 {
		return 0, nil
	}

	pipe := q.client.Pipeline()
	for _, job := range jobs {
		pipe.LPush(ctx, q.queueName, job)
		pipe.ZRem(ctx, q.delayedName(), job)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("move delayed jobs to ready: %w", err)
	}

	return len(jobs), nil
}

// QueueSize returns the number of ready jobs
func (q *RedisQueue) QueueSize(ctx context.Context) (int64, error) {
	size, err := q.client.LLen(ctx, q.queueName).Result()
	if err != nil {
		return 0, fmt.Errorf("get queue size: %w", err)
	}
	return size, nil
}

// DelayedSize returns the number of delayed jobs
func (q *RedisQueue) DelayedSize(ctx context.Context) (int64, error) {
	size, err := q.client.ZCard(ctx, q.delayedName()).Result()
	if err != nil {
		return 0, fmt.Errorf("get delayed queue size: %w", err)
	}
	return size, nil
}

// Clear removes all jobs from both queues (testing/maintenance)
func (q *RedisQueue) Clear(ctx context.Context) error {
	pipe := q.client.Pipeline()
	pipe.Del(ctx, q.queueName)
	pipe.Del(ctx, q.delayedName())

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("clear queue: %w", err)
	}

	return nil
}

// Ping checks the Redis connection
func (q *RedisQueue) Ping(ctx context.Context) error {
	return q.client.Ping(ctx).Err()
}

func (q *RedisQueue) delayedName() string {
	return q.queueName + ":delayed"
}
