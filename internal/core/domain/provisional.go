package domain

import (
	"time"

	"github.com/google/uuid"
)

type ProvisionalOrderStatus string

const (
	ProvisionalOrderStatusPending  ProvisionalOrderStatus = "PENDING"
	ProvisionalOrderStatusCaptured ProvisionalOrderStatus = "CAPTURED"
	ProvisionalOrderStatusReleased ProvisionalOrderStatus = "RELEASED"
	ProvisionalOrderStatusExpired  ProvisionalOrderStatus = "EXPIRED"
)

// ProvisionalOrder links a stock reservation to a pending payment
// authorization. It is terminal-transitioned exactly once: either the
// finalizer claims it (PENDING -> CAPTURED) or the reaper/explicit release
// does (PENDING -> EXPIRED/RELEASED). The claim is a conditional status
// update, so losers of the race never touch stock.
type ProvisionalOrder struct {
	ID              uuid.UUID
	UserID          uint64
	Items           []ProcessedItem
	TotalCost       Money
	AuthorizationID string
	CreatedAt       time.Time
	ExpiresAt       time.Time
	Status          ProvisionalOrderStatus
}

func (po *ProvisionalOrder) Expired(now time.Time) bool {
	return now.After(po.ExpiresAt)
}

// CheckoutReceipt is returned to the client after a successful checkout
// begin, for the subsequent capture step.
type CheckoutReceipt struct {
	AuthorizationID string
	ExpiresAt       time.Time
}
