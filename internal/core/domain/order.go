package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPlaced OrderStatus = "PLACED"
	OrderStatusPaid   OrderStatus = "PAID"
	OrderStatusFailed OrderStatus = "FAILED"
)

const PaymentMethodPayPal = "PAYPAL"

type Payment struct {
	Method        string `json:"method"`
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
}

// Order is the permanent record created once by the finalizer after a
// successful capture. Immutable except status/payment reconciliation.
type Order struct {
	ID          uuid.UUID
	UserID      uint64
	Items       []ProcessedItem
	TotalCost   Money
	OrderNumber string
	Status      OrderStatus
	Payment     Payment
	CreatedAt   time.Time
}
