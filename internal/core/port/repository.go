package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rgladkov/shopcheckout/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Products
	ListProductsByIDs(ctx context.Context, ids []uint64) ([]*domain.Product, error)

	// Provisional orders. Stock moves and the provisional order row always
	// change together: Create reserves stock and inserts the order in one
	// transaction, Complete confirms the sale and removes the order in one
	// transaction, Release returns stock to availability and removes the
	// order in one transaction. Complete and Release do nothing when the
	// order row is already gone, so both are safe to redeliver. Every
	// per-product update is a conditional write guarded at the moment of
	// the write.
	CreateProvisionalOrder(ctx context.Context, po *domain.ProvisionalOrder) (*domain.ProvisionalOrder, error)
	CompleteProvisionalOrder(ctx context.Context, id uuid.UUID, items []domain.ProcessedItem) error
	ReleaseProvisionalOrder(ctx context.Context, id uuid.UUID, items []domain.ProcessedItem) error
	GetProvisionalOrder(ctx context.Context, userID uint64, authorizationID string) (*domain.ProvisionalOrder, error)
	GetProvisionalOrderByID(ctx context.Context, id uuid.UUID) (*domain.ProvisionalOrder, error)
	GetProvisionalOrderByAuthorization(ctx context.Context, authorizationID string) (*domain.ProvisionalOrder, error)
	ClaimProvisionalOrder(ctx context.Context, id uuid.UUID, to domain.ProvisionalOrderStatus) (bool, error)
	ListExpiredProvisionalOrders(ctx context.Context, now time.Time) ([]*domain.ProvisionalOrder, error)

	// Orders
	NextOrderNumber(ctx context.Context) (string, error)
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error)

	// Baskets
	DeleteBasketByUser(ctx context.Context, userID uint64) error
}
