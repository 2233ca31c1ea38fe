package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/rgladkov/shopcheckout/internal/core/domain"
	"go.uber.org/zap"
)

// ValidateBasket consolidates and prices a raw basket against live stock.
// Duplicate product ids are merged by summing quantities before any stock
// check, so one request never reads the same product twice. Read-only.
func (s *Service) ValidateBasket(ctx context.Context, basket []domain.BasketItem) (*domain.ProcessedBasket, error) {
	if len(basket) == 0 {
		return nil, domain.ErrEmptyBasket
	}

	// merge duplicates, keeping first-seen order
	quantities := make(map[uint64]int32, len(basket))
	ids := make([]uint64, 0, len(basket))
	for _, item := range basket {
		if item.Quantity <= 0 {
			return nil, domain.ErrBadRequest
		}
		if _, ok := quantities[item.ProductID]; !ok {
			ids = append(ids, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
	}

	products, err := s.repo.ListProductsByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("List products", zap.Error(err))
		return nil, domain.ErrInternal
	}

	byID := make(map[uint64]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var missing []uint64
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.ProductsNotFoundError{IDs: missing}
	}

	var shortages []domain.StockShortage
	processed := domain.ProcessedBasket{
		Items:     make([]domain.ProcessedItem, 0, len(ids)),
		TotalCost: decimal.Zero,
	}
	for _, id := range ids {
		product := byID[id]
		quantity := quantities[id]
		if quantity > product.StockAvailable {
			shortages = append(shortages, domain.StockShortage{
				ProductID: id,
				Available: product.StockAvailable,
				Requested: quantity,
			})
			continue
		}

		qty, err := decimal.New(int64(quantity), 0)
		if err != nil {
			return nil, fmt.Errorf("math error:%w", err)
		}
		lineCost, err := product.Price.Mul(qty)
		if err != nil {
			return nil, fmt.Errorf("math error:%w", err)
		}
		total, err := processed.TotalCost.Add(lineCost)
		if err != nil {
			return nil, fmt.Errorf("math error:%w", err)
		}
		processed.TotalCost = total

		processed.Items = append(processed.Items, domain.ProcessedItem{
			ProductID: id,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  quantity,
		})
	}
	if len(shortages) > 0 {
		return nil, &domain.OutOfStockError{Items: shortages}
	}

	return &processed, nil
}

// BeginCheckout drives basket -> authorization -> reservation -> provisional
// order. The gateway is called before any stock is touched, so an authorize
// failure leaves nothing behind. A reservation failure after a successful
// authorize voids the authorization as compensation.
func (s *Service) BeginCheckout(ctx context.Context, userID uint64, basket []domain.BasketItem) (*domain.CheckoutReceipt, error) {
	processed, err := s.ValidateBasket(ctx, basket)
	if err != nil {
		return nil, err
	}

	authorization, err := s.gateway.Authorize(ctx, processed, domain.CurrencyGBP)
	if err != nil {
		s.logger.Error("Authorize payment", zap.Error(err))
		return nil, domain.ErrPaymentGateway
	}

	now := time.Now()
	po := &domain.ProvisionalOrder{
		ID:     uuid.New(),
		UserID: userID,
		Items:  processed.Items,
		TotalCost: domain.Money{
			Currency: domain.CurrencyGBP,
			Value:    processed.TotalCost,
		},
		AuthorizationID: authorization.ID,
		CreatedAt:       now,
		ExpiresAt:       now.Add(s.ttl),
		Status:          domain.ProvisionalOrderStatusPending,
	}

	// reservation effects and the provisional order persist as one atomic unit
	_, err = s.repo.CreateProvisionalOrder(ctx, po)
	if err != nil {
		s.compensateAuthorization(ctx, authorization.ID)

		var oos *domain.OutOfStockError
		if errors.As(err, &oos) {
			return nil, err
		}
		s.logger.Error("Create provisional order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return &domain.CheckoutReceipt{
		AuthorizationID: authorization.ID,
		ExpiresAt:       po.ExpiresAt,
	}, nil
}

// compensateAuthorization voids an authorization left behind by a failed
// checkout step. A failed void is never silently dropped: the authorization
// id is logged for manual reconciliation.
func (s *Service) compensateAuthorization(ctx context.Context, authorizationID string) {
	if err := s.gateway.Void(ctx, authorizationID); err != nil {
		s.logger.Error("Void authorization failed, manual reconciliation required",
			zap.String("authorization", authorizationID),
			zap.Error(err))
	}
}

func (s *Service) GetOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Get orders for user", zap.Error(err))
		return nil, err
	}
	return list, nil
}
