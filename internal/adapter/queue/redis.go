package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rgladkov/shopcheckout/internal/adapter/config"
	"github.com/rgladkov/shopcheckout/internal/core/port"
	"go.uber.org/zap"
)

const (
	// Confirmation email dispatch: queue:confirmation-email -> {orderNumber,name,email}
	KeyConfirmationQueue = "queue:confirmation-email"

	// Post-payment cleanup: queue:order-cleanup -> port.CleanupTask
	KeyCleanupQueue = "queue:order-cleanup"

	// Tasks sit here from pop to acknowledgement. A worker that dies
	// mid-task leaves the entry behind, and the next worker start moves it
	// back onto the queue.
	KeyCleanupProcessing = "queue:order-cleanup:processing"
)

const popTimeout = 5 * time.Second
const maxCleanupAttempts = 5

// RedisQueue backs the fire-and-forget confirmation dispatch and the
// post-payment cleanup retry path with redis lists. Delivery is
// at-least-once; handlers are idempotent.
type RedisQueue struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisQueue(ctx context.Context, cfg *config.Redis, log *zap.Logger) (*RedisQueue, error) {
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return &RedisQueue{client: client, logger: log}, nil
}

type confirmationTask struct {
	OrderNumber string `json:"orderNumber"`
	Name        string `json:"name"`
	Email       string `json:"email"`
}

func (q *RedisQueue) EnqueueConfirmation(ctx context.Context, orderNumber string, name string, email string) error {
	return q.push(ctx, KeyConfirmationQueue, confirmationTask{
		OrderNumber: orderNumber,
		Name:        name,
		Email:       email,
	})
}

func (q *RedisQueue) EnqueueCleanup(ctx context.Context, task port.CleanupTask) error {
	return q.push(ctx, KeyCleanupQueue, task)
}

func (q *RedisQueue) push(ctx context.Context, key string, task any) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, key, payload).Err()
}

// StartCleanupWorker consumes cleanup tasks and hands them to the completer.
// Each pop moves the task to the processing list and only a finished handler
// acknowledges it, so a crash mid-task never loses the cleanup. A failed
// task goes back on the queue until maxCleanupAttempts, after which it is
// logged for manual reconciliation - the paid order is never affected.
func (q *RedisQueue) StartCleanupWorker(ctx context.Context, completer port.OrderCompleter) {
	go func() {
		q.recoverHeldTasks(ctx)
		for {
			select {
			case <-ctx.Done():
				q.logger.Debug("Cleanup worker stopped")
				return
			default:
			}

			payload, err := q.client.BLMove(ctx, KeyCleanupQueue, KeyCleanupProcessing, "RIGHT", "LEFT", popTimeout).Result()
			if err != nil {
				if err == redis.Nil || ctx.Err() != nil {
					continue
				}
				q.logger.Error("Pop cleanup task", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}

			var task port.CleanupTask
			if err := json.Unmarshal([]byte(payload), &task); err != nil {
				q.logger.Error("Decode cleanup task", zap.Error(err))
				q.ack(ctx, payload)
				continue
			}

			if err := completer.CompleteOrder(ctx, task); err != nil {
				q.retry(ctx, task, err)
			}
			q.ack(ctx, payload)
		}
	}()
}

// recoverHeldTasks returns entries a crashed worker left in the processing
// list to the queue before consuming starts.
func (q *RedisQueue) recoverHeldTasks(ctx context.Context) {
	for {
		err := q.client.LMove(ctx, KeyCleanupProcessing, KeyCleanupQueue, "RIGHT", "LEFT").Err()
		if err != nil {
			if err != redis.Nil {
				q.logger.Error("Recover held cleanup tasks", zap.Error(err))
			}
			return
		}
	}
}

func (q *RedisQueue) ack(ctx context.Context, payload string) {
	if err := q.client.LRem(ctx, KeyCleanupProcessing, 1, payload).Err(); err != nil {
		q.logger.Error("Acknowledge cleanup task", zap.Error(err))
	}
}

func (q *RedisQueue) retry(ctx context.Context, task port.CleanupTask, cause error) {
	task.Attempt++
	if task.Attempt >= maxCleanupAttempts {
		q.logger.Error("Cleanup task dropped after max attempts, manual reconciliation required",
			zap.String("order", task.OrderNumber),
			zap.String("provisional_order", task.ProvisionalOrderID.String()),
			zap.Error(cause))
		return
	}

	q.logger.Error("Cleanup task failed, requeueing",
		zap.String("order", task.OrderNumber),
		zap.Int("attempt", task.Attempt),
		zap.Error(cause))
	if err := q.EnqueueCleanup(ctx, task); err != nil {
		q.logger.Error("Requeue cleanup task", zap.Error(err))
	}
}
