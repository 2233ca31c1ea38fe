package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/rgladkov/shopcheckout/internal/core/domain"
	"github.com/rgladkov/shopcheckout/internal/core/port"
	"github.com/rgladkov/shopcheckout/internal/core/port/mock"
	"github.com/rgladkov/shopcheckout/internal/core/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func pendingProvisionalOrder() *domain.ProvisionalOrder {
	now := time.Now()
	return &domain.ProvisionalOrder{
		ID:     uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		UserID: 1,
		Items: []domain.ProcessedItem{
			{ProductID: 1, Name: "Keyboard", Price: decimal.MustParse("49.99"), Quantity: 2},
		},
		TotalCost: domain.Money{
			Currency: domain.CurrencyGBP,
			Value:    decimal.MustParse("99.98"),
		},
		AuthorizationID: "AUTH-1",
		CreatedAt:       now,
		ExpiresAt:       now.Add(15 * time.Minute),
		Status:          domain.ProvisionalOrderStatusPending,
	}
}

func matchingAuthorization() *port.Authorization {
	return &port.Authorization{
		ID:     "AUTH-1",
		Status: "CREATED",
		Items: []port.AuthorizationItem{
			{SKU: 1, Name: "Keyboard", UnitPrice: decimal.MustParse("49.99"), Quantity: 2},
		},
		Total: domain.Money{
			Currency: domain.CurrencyGBP,
			Value:    decimal.MustParse("99.98"),
		},
	}
}

func TestService_FinalizeOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	user := &port.TokenPayload{UserID: 1, Name: "Roman", Email: "roman@example.com"}

	type finalizeOrderTest struct {
		name     string
		mock     prepareMocks
		expError error
	}

	tests := []finalizeOrderTest{
		{
			name: "Finalize good",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, queue *mock.MockTaskQueue) {
				po := pendingProvisionalOrder()
				repo.EXPECT().GetProvisionalOrder(gomock.Any(), uint64(1), "AUTH-1").
					Return(po, nil)
				gateway.EXPECT().GetAuthorization(gomock.Any(), "AUTH-1").
					Return(matchingAuthorization(), nil)
				gateway.EXPECT().Capture(gomock.Any(), "AUTH-1").
					Return(&port.CaptureResult{Status: "COMPLETED", TransactionID: "TX-1"}, nil)
				repo.EXPECT().NextOrderNumber(gomock.Any()).
					Return("ORD-000042", nil)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
						return order, nil
					})
				queue.EXPECT().EnqueueConfirmation(gomock.Any(), "ORD-000042", user.Name, user.Email).
					Return(nil)
				queue.EXPECT().EnqueueCleanup(gomock.Any(), port.CleanupTask{
					ProvisionalOrderID: po.ID,
					UserID:             1,
					OrderNumber:        "ORD-000042",
				}).Return(nil)
			},
			expError: nil,
		},
		{
			name: "Unknown authorization",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, queue *mock.MockTaskQueue) {
				repo.EXPECT().GetProvisionalOrder(gomock.Any(), uint64(1), "AUTH-1").
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrProvisionalOrderNotFound,
		},
		{
			name: "Expired checkout rejected",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, queue *mock.MockTaskQueue) {
				po := pendingProvisionalOrder()
				po.ExpiresAt = time.Now().Add(-time.Minute)
				repo.EXPECT().GetProvisionalOrder(gomock.Any(), uint64(1), "AUTH-1").
					Return(po, nil)
			},
			expError: domain.ErrProvisionalOrderNotFound,
		},
		{
			name: "Authorization total drifted",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, queue *mock.MockTaskQueue) {
				repo.EXPECT().GetProvisionalOrder(gomock.Any(), uint64(1), "AUTH-1").
					Return(pendingProvisionalOrder(), nil)
				authorization := matchingAuthorization()
				authorization.Total.Value = decimal.MustParse("49.99")
				gateway.EXPECT().GetAuthorization(gomock.Any(), "AUTH-1").
					Return(authorization, nil)
			},
			expError: domain.ErrOrderConsistency,
		},
		{
			name: "Capture fails, checkout stays retryable",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, queue *mock.MockTaskQueue) {
				repo.EXPECT().GetProvisionalOrder(gomock.Any(), uint64(1), "AUTH-1").
					Return(pendingProvisionalOrder(), nil)
				gateway.EXPECT().GetAuthorization(gomock.Any(), "AUTH-1").
					Return(matchingAuthorization(), nil)
				gateway.EXPECT().Capture(gomock.Any(), "AUTH-1").
					Return(nil, domain.ErrInternal)
			},
			expError: domain.ErrPaymentCapture,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			gateway := mock.NewMockPaymentGateway(mockCtrl)
			queue := mock.NewMockTaskQueue(mockCtrl)
			test.mock(repo, gateway, queue)

			s, err := service.NewService(repo, gateway, queue, checkoutTTL, logger)
			assert.NoError(t, err)

			order, err := s.FinalizeOrder(context.Background(), user, "AUTH-1")

			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.Equal(t, "ORD-000042", order.OrderNumber)
				assert.Equal(t, domain.OrderStatusPaid, order.Status)
				assert.Equal(t, domain.Payment{
					Method:        domain.PaymentMethodPayPal,
					Status:        "COMPLETED",
					TransactionID: "TX-1",
				}, order.Payment)
				assert.Equal(t, decimal.MustParse("99.98"), order.TotalCost.Value)
			} else {
				assert.Nil(t, order)
			}
		})
	}
}

func TestService_CompleteOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	po := pendingProvisionalOrder()
	task := port.CleanupTask{
		ProvisionalOrderID: po.ID,
		UserID:             po.UserID,
		OrderNumber:        "ORD-000042",
	}

	type completeOrderTest struct {
		name     string
		mock     prepareMocks
		expError error
	}

	tests := []completeOrderTest{
		{
			name: "Cleanup good",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, queue *mock.MockTaskQueue) {
				repo.EXPECT().GetProvisionalOrderByID(gomock.Any(), po.ID).
					Return(pendingProvisionalOrder(), nil)
				repo.EXPECT().ClaimProvisionalOrder(gomock.Any(), po.ID, domain.ProvisionalOrderStatusCaptured).
					Return(true, nil)
				repo.EXPECT().DeleteBasketByUser(gomock.Any(), po.UserID).Return(nil)
				repo.EXPECT().CompleteProvisionalOrder(gomock.Any(), po.ID, po.Items).Return(nil)
			},
			expError: nil,
		},
		{
			name: "Redelivery after full cleanup is a no-op",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, queue *mock.MockTaskQueue) {
				repo.EXPECT().GetProvisionalOrderByID(gomock.Any(), po.ID).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: nil,
		},
		{
			name: "Reaper won the claim, stock left alone",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, queue *mock.MockTaskQueue) {
				repo.EXPECT().GetProvisionalOrderByID(gomock.Any(), po.ID).
					Return(pendingProvisionalOrder(), nil)
				repo.EXPECT().ClaimProvisionalOrder(gomock.Any(), po.ID, domain.ProvisionalOrderStatusCaptured).
					Return(false, nil)
			},
			expError: nil,
		},
		{
			name: "Resume after partial cleanup",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, queue *mock.MockTaskQueue) {
				claimed := pendingProvisionalOrder()
				claimed.Status = domain.ProvisionalOrderStatusCaptured
				repo.EXPECT().GetProvisionalOrderByID(gomock.Any(), po.ID).
					Return(claimed, nil)
				repo.EXPECT().DeleteBasketByUser(gomock.Any(), po.UserID).Return(nil)
				repo.EXPECT().CompleteProvisionalOrder(gomock.Any(), po.ID, po.Items).Return(nil)
			},
			expError: nil,
		},
		{
			name: "Confirm failure surfaces for retry",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, queue *mock.MockTaskQueue) {
				repo.EXPECT().GetProvisionalOrderByID(gomock.Any(), po.ID).
					Return(pendingProvisionalOrder(), nil)
				repo.EXPECT().ClaimProvisionalOrder(gomock.Any(), po.ID, domain.ProvisionalOrderStatusCaptured).
					Return(true, nil)
				repo.EXPECT().DeleteBasketByUser(gomock.Any(), po.UserID).Return(nil)
				repo.EXPECT().CompleteProvisionalOrder(gomock.Any(), po.ID, po.Items).
					Return(domain.ErrInternal)
			},
			expError: domain.ErrInternal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			gateway := mock.NewMockPaymentGateway(mockCtrl)
			queue := mock.NewMockTaskQueue(mockCtrl)
			test.mock(repo, gateway, queue)

			s, err := service.NewService(repo, gateway, queue, checkoutTTL, logger)
			assert.NoError(t, err)

			err = s.CompleteOrder(context.Background(), task)

			assert.Equal(t, test.expError, err)
		})
	}
}

// A cleanup delivery that claims the order but dies before the combined
// confirm-and-delete commits must leave the redelivery to confirm the sale
// exactly once. The mock enforces the single CompleteProvisionalOrder call
// per delivery; a second confirm would fail the controller.
func TestService_CompleteOrderRedelivery(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	po := pendingProvisionalOrder()
	task := port.CleanupTask{
		ProvisionalOrderID: po.ID,
		UserID:             po.UserID,
		OrderNumber:        "ORD-000042",
	}

	repo := mock.NewMockRepository(mockCtrl)
	gateway := mock.NewMockPaymentGateway(mockCtrl)
	queue := mock.NewMockTaskQueue(mockCtrl)

	// first delivery: claim wins, combined step fails before committing
	repo.EXPECT().GetProvisionalOrderByID(gomock.Any(), po.ID).
		Return(pendingProvisionalOrder(), nil)
	repo.EXPECT().ClaimProvisionalOrder(gomock.Any(), po.ID, domain.ProvisionalOrderStatusCaptured).
		Return(true, nil)
	repo.EXPECT().DeleteBasketByUser(gomock.Any(), po.UserID).Return(nil)
	repo.EXPECT().CompleteProvisionalOrder(gomock.Any(), po.ID, po.Items).
		Return(domain.ErrInternal)

	// redelivery: order is already CAPTURED, no second claim, one confirm
	claimed := pendingProvisionalOrder()
	claimed.Status = domain.ProvisionalOrderStatusCaptured
	repo.EXPECT().GetProvisionalOrderByID(gomock.Any(), po.ID).
		Return(claimed, nil)
	repo.EXPECT().DeleteBasketByUser(gomock.Any(), po.UserID).Return(nil)
	repo.EXPECT().CompleteProvisionalOrder(gomock.Any(), po.ID, po.Items).
		Return(nil)

	s, err := service.NewService(repo, gateway, queue, checkoutTTL, logger)
	assert.NoError(t, err)

	err = s.CompleteOrder(context.Background(), task)
	assert.Equal(t, domain.ErrInternal, err)

	err = s.CompleteOrder(context.Background(), task)
	assert.NoError(t, err)
}
