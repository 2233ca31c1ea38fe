package service

import (
	"context"
	"errors"
	"time"

	"github.com/rgladkov/shopcheckout/internal/core/domain"
	"go.uber.org/zap"
)

// StartReaper periodically reclaims stock held by expired provisional
// orders, bounding how long an abandoned checkout can lock stock out.
func (s *Service) StartReaper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := s.ReapExpired(ctx); err != nil {
					s.logger.Error("Reap expired provisional orders", zap.Error(err))
				}
			case <-ctx.Done():
				s.logger.Debug("Reaper stopped")
				return
			}
		}
	}()
}

// ReapExpired releases stock from every PENDING provisional order past its
// expiry. Each order is claimed atomically first; if the finalizer got there
// in the meantime the reaper takes no further action on it.
func (s *Service) ReapExpired(ctx context.Context) error {
	expired, err := s.repo.ListExpiredProvisionalOrders(ctx, time.Now())
	if err != nil {
		return err
	}

	for _, po := range expired {
		if err := s.releaseProvisionalOrder(ctx, po, domain.ProvisionalOrderStatusExpired); err != nil {
			s.logger.Error("Release expired provisional order",
				zap.String("provisional_order", po.ID.String()),
				zap.Error(err))
		}
	}
	return nil
}

// ReleaseCheckout frees the reservation behind an authorization after a
// non-recoverable payment error on the client. A missing or already-claimed
// provisional order is not an error: the release is already handled.
func (s *Service) ReleaseCheckout(ctx context.Context, authorizationID string) error {
	po, err := s.repo.GetProvisionalOrderByAuthorization(ctx, authorizationID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil
		}
		s.logger.Error("Get provisional order for release", zap.Error(err))
		return domain.ErrInternal
	}

	if err := s.releaseProvisionalOrder(ctx, po, domain.ProvisionalOrderStatusReleased); err != nil {
		s.logger.Error("Release provisional order",
			zap.String("authorization", authorizationID),
			zap.Error(err))
		return domain.ErrInternal
	}
	return nil
}

func (s *Service) releaseProvisionalOrder(ctx context.Context, po *domain.ProvisionalOrder,
	to domain.ProvisionalOrderStatus) error {
	claimed, err := s.repo.ClaimProvisionalOrder(ctx, po.ID, to)
	if err != nil {
		return err
	}
	if !claimed {
		// lost the race to the finalizer
		return nil
	}

	if err := s.repo.ReleaseProvisionalOrder(ctx, po.ID, po.Items); err != nil {
		return err
	}

	s.logger.Info("Provisional order released",
		zap.String("provisional_order", po.ID.String()),
		zap.String("status", string(to)))
	return nil
}
