package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/rgladkov/shopcheckout/internal/core/domain"
	"github.com/rgladkov/shopcheckout/internal/core/port"
	"github.com/rgladkov/shopcheckout/internal/core/port/mock"
	"github.com/rgladkov/shopcheckout/internal/core/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type prepareMocks func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, queue *mock.MockTaskQueue)

const checkoutTTL = 15 * time.Minute

func TestService_ValidateBasket(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	type validateBasketTest struct {
		name      string
		basket    []domain.BasketItem
		mock      prepareMocks
		expError  error
		expResult *domain.ProcessedBasket
	}

	keyboard := domain.Product{
		ID:             1,
		Name:           "Keyboard",
		Price:          decimal.MustParse("49.99"),
		StockAvailable: 10,
		StockReserved:  0,
	}
	mouse := domain.Product{
		ID:             2,
		Name:           "Mouse",
		Price:          decimal.MustParse("19.99"),
		StockAvailable: 3,
		StockReserved:  1,
	}

	tests := []validateBasketTest{
		{
			name:   "Empty basket",
			basket: []domain.BasketItem{},
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, queue *mock.MockTaskQueue) {
			},
			expError:  domain.ErrEmptyBasket,
			expResult: nil,
		},
		{
			name:   "Non-positive quantity",
			basket: []domain.BasketItem{{ProductID: 1, Quantity: 0}},
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, queue *mock.MockTaskQueue) {
			},
			expError:  domain.ErrBadRequest,
			expResult: nil,
		},
		{
			name: "Duplicate lines merged",
			basket: []domain.BasketItem{
				{ProductID: 1, Quantity: 2},
				{ProductID: 1, Quantity: 3},
			},
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, queue *mock.MockTaskQueue) {
				repo.EXPECT().ListProductsByIDs(gomock.Any(), []uint64{1}).
					Return([]*domain.Product{&keyboard}, nil)
			},
			expError: nil,
			expResult: &domain.ProcessedBasket{
				Items: []domain.ProcessedItem{
					{ProductID: 1, Name: "Keyboard", Price: keyboard.Price, Quantity: 5},
				},
				TotalCost: decimal.MustParse("249.95"),
			},
		},
		{
			name: "Two products totalled",
			basket: []domain.BasketItem{
				{ProductID: 1, Quantity: 1},
				{ProductID: 2, Quantity: 2},
			},
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, queue *mock.MockTaskQueue) {
				repo.EXPECT().ListProductsByIDs(gomock.Any(), []uint64{1, 2}).
					Return([]*domain.Product{&keyboard, &mouse}, nil)
			},
			expError: nil,
			expResult: &domain.ProcessedBasket{
				Items: []domain.ProcessedItem{
					{ProductID: 1, Name: "Keyboard", Price: keyboard.Price, Quantity: 1},
					{ProductID: 2, Name: "Mouse", Price: mouse.Price, Quantity: 2},
				},
				TotalCost: decimal.MustParse("89.97"),
			},
		},
		{
			name:   "Unknown product",
			basket: []domain.BasketItem{{ProductID: 99, Quantity: 1}},
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, queue *mock.MockTaskQueue) {
				repo.EXPECT().ListProductsByIDs(gomock.Any(), []uint64{99}).
					Return([]*domain.Product{}, nil)
			},
			expError:  &domain.ProductsNotFoundError{IDs: []uint64{99}},
			expResult: nil,
		},
		{
			name: "Insufficient stock",
			basket: []domain.BasketItem{
				{ProductID: 1, Quantity: 1},
				{ProductID: 2, Quantity: 5},
			},
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, queue *mock.MockTaskQueue) {
				repo.EXPECT().ListProductsByIDs(gomock.Any(), []uint64{1, 2}).
					Return([]*domain.Product{&keyboard, &mouse}, nil)
			},
			expError: &domain.OutOfStockError{
				Items: []domain.StockShortage{
					{ProductID: 2, Available: 3, Requested: 5},
				},
			},
			expResult: nil,
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

			result, err := s.ValidateBasket(context.Background(), test.basket)

			assert.Equal(t, test.expResult, result)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_BeginCheckout(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	type beginCheckoutTest struct {
		name     string
		basket   []domain.BasketItem
		mock     prepareMocks
		expError error
	}

	keyboard := domain.Product{
		ID:             1,
		Name:           "Keyboard",
		Price:          decimal.MustParse("49.99"),
		StockAvailable: 10,
	}
	authorization := port.Authorization{
		ID:     "AUTH-1",
		Status: "CREATED",
	}

	tests := []beginCheckoutTest{
		{
			name:   "Checkout good",
			basket: []domain.BasketItem{{ProductID: 1, Quantity: 2}},
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, queue *mock.MockTaskQueue) {
				repo.EXPECT().ListProductsByIDs(gomock.Any(), []uint64{1}).
					Return([]*domain.Product{&keyboard}, nil)
				gateway.EXPECT().Authorize(gomock.Any(), gomock.Any(), domain.CurrencyGBP).
					Return(&authorization, nil)
				repo.EXPECT().CreateProvisionalOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, po *domain.ProvisionalOrder) (*domain.ProvisionalOrder, error) {
						return po, nil
					})
			},
			expError: nil,
		},
		{
			name:   "Authorize fails before any reservation",
			basket: []domain.BasketItem{{ProductID: 1, Quantity: 2}},
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, queue *mock.MockTaskQueue) {
				repo.EXPECT().ListProductsByIDs(gomock.Any(), []uint64{1}).
					Return([]*domain.Product{&keyboard}, nil)
				gateway.EXPECT().Authorize(gomock.Any(), gomock.Any(), domain.CurrencyGBP).
					Return(nil, domain.ErrInternal)
			},
			expError: domain.ErrPaymentGateway,
		},
		{
			name:   "Reservation lost the race, authorization voided",
			basket: []domain.BasketItem{{ProductID: 1, Quantity: 2}},
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, queue *mock.MockTaskQueue) {
				repo.EXPECT().ListProductsByIDs(gomock.Any(), []uint64{1}).
					Return([]*domain.Product{&keyboard}, nil)
				gateway.EXPECT().Authorize(gomock.Any(), gomock.Any(), domain.CurrencyGBP).
					Return(&authorization, nil)
				repo.EXPECT().CreateProvisionalOrder(gomock.Any(), gomock.Any()).
					Return(nil, &domain.OutOfStockError{
						Items: []domain.StockShortage{{ProductID: 1, Available: 1, Requested: 2}},
					})
				gateway.EXPECT().Void(gomock.Any(), authorization.ID).Return(nil)
			},
			expError: &domain.OutOfStockError{
				Items: []domain.StockShortage{{ProductID: 1, Available: 1, Requested: 2}},
			},
		},
		{
			name:   "Store failure voids authorization",
			basket: []domain.BasketItem{{ProductID: 1, Quantity: 2}},
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, queue *mock.MockTaskQueue) {
				repo.EXPECT().ListProductsByIDs(gomock.Any(), []uint64{1}).
					Return([]*domain.Product{&keyboard}, nil)
				gateway.EXPECT().Authorize(gomock.Any(), gomock.Any(), domain.CurrencyGBP).
					Return(&authorization, nil)
				repo.EXPECT().CreateProvisionalOrder(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrConflictingData)
				gateway.EXPECT().Void(gomock.Any(), authorization.ID).
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

			receipt, err := s.BeginCheckout(context.Background(), 1, test.basket)

			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.Equal(t, authorization.ID, receipt.AuthorizationID)
				assert.WithinDuration(t, time.Now().Add(checkoutTTL), receipt.ExpiresAt, time.Minute)
			} else {
				assert.Nil(t, receipt)
			}
		})
	}
}
