package port

import (
	"context"

	"github.com/rgladkov/shopcheckout/internal/core/domain"
)

type Service interface {
	ValidateBasket(ctx context.Context, basket []domain.BasketItem) (*domain.ProcessedBasket, error)
	BeginCheckout(ctx context.Context, userID uint64, basket []domain.BasketItem) (*domain.CheckoutReceipt, error)
	FinalizeOrder(ctx context.Context, user *TokenPayload, authorizationID string) (*domain.Order, error)
	ReleaseCheckout(ctx context.Context, authorizationID string) error
	GetOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error)
}
