package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rgladkov/shopcheckout/internal/core/domain"
	"github.com/rgladkov/shopcheckout/internal/core/port"
	"go.uber.org/zap"
)

// FinalizeOrder turns a pending checkout into a paid permanent order:
// lookup -> consistency check against the gateway -> capture -> persist.
// The caller gets a response as soon as the order row is written; basket and
// reservation cleanup run through the task queue afterwards and can never
// roll back an already-paid order.
func (s *Service) FinalizeOrder(ctx context.Context, user *port.TokenPayload, authorizationID string) (*domain.Order, error) {
	po, err := s.repo.GetProvisionalOrder(ctx, user.UserID, authorizationID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrProvisionalOrderNotFound
		}
		s.logger.Error("Get provisional order", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if po.Status != domain.ProvisionalOrderStatusPending || po.Expired(time.Now()) {
		return nil, domain.ErrProvisionalOrderNotFound
	}

	authorization, err := s.gateway.GetAuthorization(ctx, authorizationID)
	if err != nil {
		s.logger.Error("Get authorization", zap.Error(err))
		return nil, domain.ErrPaymentGateway
	}

	if err := compareAuthorization(authorization, po); err != nil {
		s.logger.Error("Authorization mismatch",
			zap.String("authorization", authorizationID),
			zap.Error(err))
		return nil, domain.ErrOrderConsistency
	}

	capture, err := s.gateway.Capture(ctx, authorizationID)
	if err != nil {
		// provisional order is left untouched so the capture can be retried
		s.logger.Error("Capture payment", zap.Error(err))
		return nil, domain.ErrPaymentCapture
	}

	orderNumber, err := s.repo.NextOrderNumber(ctx)
	if err != nil {
		s.logger.Error("Next order number", zap.Error(err))
		return nil, domain.ErrInternal
	}

	order := &domain.Order{
		ID:          uuid.New(),
		UserID:      user.UserID,
		Items:       po.Items,
		TotalCost:   po.TotalCost,
		OrderNumber: orderNumber,
		Status:      domain.OrderStatusPaid,
		Payment: domain.Payment{
			Method:        domain.PaymentMethodPayPal,
			Status:        capture.Status,
			TransactionID: capture.TransactionID,
		},
		CreatedAt: time.Now(),
	}
	order, err = s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order after capture, manual reconciliation required",
			zap.String("authorization", authorizationID),
			zap.Error(err))
		return nil, domain.ErrInternal
	}

	if err := s.queue.EnqueueConfirmation(ctx, order.OrderNumber, user.Name, user.Email); err != nil {
		s.logger.Error("Enqueue confirmation email", zap.Error(err))
	}
	if err := s.queue.EnqueueCleanup(ctx, port.CleanupTask{
		ProvisionalOrderID: po.ID,
		UserID:             user.UserID,
		OrderNumber:        order.OrderNumber,
	}); err != nil {
		s.logger.Error("Enqueue order cleanup, manual reconciliation required",
			zap.String("order", order.OrderNumber),
			zap.Error(err))
	}

	return order, nil
}

// CompleteOrder is the cleanup queue handler: it claims the provisional
// order, deletes the user's basket, then confirms the stock sale and removes
// the provisional order as one repository transaction. Idempotent under
// at-least-once delivery: a redelivery after the combined step committed
// finds no order row and confirms nothing.
func (s *Service) CompleteOrder(ctx context.Context, task port.CleanupTask) error {
	po, err := s.repo.GetProvisionalOrderByID(ctx, task.ProvisionalOrderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			// already cleaned up by a previous delivery
			return nil
		}
		return err
	}

	switch po.Status {
	case domain.ProvisionalOrderStatusPending:
		claimed, err := s.repo.ClaimProvisionalOrder(ctx, po.ID, domain.ProvisionalOrderStatusCaptured)
		if err != nil {
			return err
		}
		if !claimed {
			// the reaper won the claim after a successful capture: its
			// released stock now needs manual reconciliation
			s.logger.Error("Provisional order claimed by reaper after capture, manual reconciliation required",
				zap.String("order", task.OrderNumber),
				zap.String("provisional_order", po.ID.String()))
			return nil
		}
	case domain.ProvisionalOrderStatusCaptured:
		// claimed on a previous delivery, resume cleanup
	default:
		s.logger.Error("Provisional order released before cleanup, manual reconciliation required",
			zap.String("order", task.OrderNumber),
			zap.String("status", string(po.Status)))
		return nil
	}

	if err := s.repo.DeleteBasketByUser(ctx, task.UserID); err != nil {
		return err
	}
	return s.repo.CompleteProvisionalOrder(ctx, po.ID, po.Items)
}

// compareAuthorization recomputes the gateway's view of the line items and
// total against the stored provisional order, field for field.
func compareAuthorization(authorization *port.Authorization, po *domain.ProvisionalOrder) error {
	if authorization.Total.Currency != po.TotalCost.Currency {
		return errors.New("currencies differ")
	}
	if authorization.Total.Value.Cmp(po.TotalCost.Value) != 0 {
		return errors.New("grand totals differ")
	}
	if len(authorization.Items) != len(po.Items) {
		return errors.New("item counts differ")
	}

	bySKU := make(map[uint64]port.AuthorizationItem, len(authorization.Items))
	for _, item := range authorization.Items {
		bySKU[item.SKU] = item
	}
	for _, item := range po.Items {
		authItem, ok := bySKU[item.ProductID]
		if !ok {
			return errors.New("item missing from authorization")
		}
		if authItem.Name != item.Name ||
			authItem.Quantity != item.Quantity ||
			authItem.UnitPrice.Cmp(item.Price) != 0 {
			return errors.New("item name, price or quantity differs")
		}
	}
	return nil
}
