package port

import (
	"context"

	"github.com/govalues/decimal"
	"github.com/rgladkov/shopcheckout/internal/core/domain"
)

type AuthorizationItem struct {
	SKU       uint64
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int32
}

type Authorization struct {
	ID     string
	Status string
	Items  []AuthorizationItem
	Total  domain.Money
}

type CaptureResult struct {
	Status        string
	TransactionID string
}

// PaymentGateway is the external payment provider contract. Capture must be
// safe to retry; Void is best-effort compensation.
//
//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type PaymentGateway interface {
	Authorize(ctx context.Context, basket *domain.ProcessedBasket, currency string) (*Authorization, error)
	GetAuthorization(ctx context.Context, authorizationID string) (*Authorization, error)
	Capture(ctx context.Context, authorizationID string) (*CaptureResult, error)
	Void(ctx context.Context, authorizationID string) error
}
