package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/rgladkov/shopcheckout/internal/core/domain"
	"github.com/rgladkov/shopcheckout/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type orderItemResponse struct {
	ProductID uint64          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int32           `json:"quantity"`
}

type moneyResponse struct {
	Currency string          `json:"currency"`
	Value    decimal.Decimal `json:"value"`
}

type paymentResponse struct {
	Method        string `json:"method"`
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
}

type orderResponse struct {
	OrderNumber string              `json:"orderNumber"`
	Status      string              `json:"status"`
	Items       []orderItemResponse `json:"items"`
	TotalCost   moneyResponse       `json:"totalCost"`
	Payment     paymentResponse     `json:"payment"`
	CreatedAt   time.Time           `json:"createdAt"`
}

func newOrderResponse(order *domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	return orderResponse{
		OrderNumber: order.OrderNumber,
		Status:      string(order.Status),
		Items:       items,
		TotalCost: moneyResponse{
			Currency: order.TotalCost.Currency,
			Value:    order.TotalCost.Value,
		},
		Payment: paymentResponse{
			Method:        order.Payment.Method,
			Status:        order.Payment.Status,
			TransactionID: order.Payment.TransactionID,
		},
		CreatedAt: order.CreatedAt,
	}
}

func (oh *OrderHandler) ListOrdersByUser(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	list, err := oh.service.GetOrdersByUser(ctx, userID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResponse(o))
	}

	oh.handleSuccess(ctx, result)
}
