package port

import (
	"context"

	"github.com/google/uuid"
)

// CleanupTask is the post-payment cleanup unit of work. Delivery is
// at-least-once; the handler is idempotent keyed by the provisional order id.
type CleanupTask struct {
	ProvisionalOrderID uuid.UUID `json:"provisionalOrderId"`
	UserID             uint64    `json:"userId"`
	OrderNumber        string    `json:"orderNumber"`
	Attempt            int       `json:"attempt"`
}

//go:generate mockgen -source=queue.go -destination=mock/queue.go -package=mock
type TaskQueue interface {
	EnqueueConfirmation(ctx context.Context, orderNumber string, name string, email string) error
	EnqueueCleanup(ctx context.Context, task CleanupTask) error
}

// OrderCompleter is consumed by the cleanup queue worker.
type OrderCompleter interface {
	CompleteOrder(ctx context.Context, task CleanupTask) error
}
