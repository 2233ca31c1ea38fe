package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/rgladkov/shopcheckout/internal/core/domain"
	"github.com/rgladkov/shopcheckout/internal/core/port"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	Handler
	service port.Service
}

func NewCheckoutHandler(service port.Service, logger *zap.Logger) (*CheckoutHandler, error) {
	return &CheckoutHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type basketItemRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
	Quantity  int32  `json:"quantity" binding:"required,gt=0"`
}

func basketFromRequest(items []basketItemRequest) []domain.BasketItem {
	basket := make([]domain.BasketItem, 0, len(items))
	for _, item := range items {
		basket = append(basket, domain.BasketItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return basket
}

type pricedProduct struct {
	ID    uint64          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type pricedBasketItem struct {
	Product  pricedProduct `json:"product"`
	Quantity int32         `json:"quantity"`
}

type checkoutResponse struct {
	Basket     []pricedBasketItem `json:"basket"`
	TotalPrice decimal.Decimal    `json:"totalPrice"`
}

// ValidateBasket prices a basket for checkout without any side effects,
// re-calculating the total against the live catalog.
func (ch *CheckoutHandler) ValidateBasket(ctx *gin.Context) {
	var req []basketItemRequest
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	processed, err := ch.service.ValidateBasket(ctx, basketFromRequest(req))
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	basket := make([]pricedBasketItem, 0, len(processed.Items))
	for _, item := range processed.Items {
		basket = append(basket, pricedBasketItem{
			Product: pricedProduct{
				ID:    item.ProductID,
				Name:  item.Name,
				Price: item.Price,
			},
			Quantity: item.Quantity,
		})
	}

	ch.handleSuccess(ctx, checkoutResponse{
		Basket:     basket,
		TotalPrice: processed.TotalCost,
	})
}

type beginCheckoutResponse struct {
	AuthorizationID string    `json:"authorizationId"`
	ExpiresAt       time.Time `json:"expiresAt"`
}

// BeginCheckout authorizes payment and reserves the basket's stock behind a
// provisional order. Returns the authorization id for the capture step.
func (ch *CheckoutHandler) BeginCheckout(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	var req []basketItemRequest
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	receipt, err := ch.service.BeginCheckout(ctx, userID, basketFromRequest(req))
	if err != nil {
		recordCheckout("begin", "failed")
		ch.handleError(ctx, err)
		return
	}

	recordCheckout("begin", "authorized")
	ch.handleSuccessWithStatus(ctx, beginCheckoutResponse{
		AuthorizationID: receipt.AuthorizationID,
		ExpiresAt:       receipt.ExpiresAt,
	}, http.StatusCreated)
}

// Capture finalizes a pending checkout once the user has approved payment.
func (ch *CheckoutHandler) Capture(ctx *gin.Context) {
	payload := getAuthPayload(ctx)
	authorizationID := ctx.Param("authorizationID")

	order, err := ch.service.FinalizeOrder(ctx, payload, authorizationID)
	if err != nil {
		recordCheckout("capture", "failed")
		ch.handleError(ctx, err)
		return
	}

	recordCheckout("capture", "captured")
	ch.handleSuccessWithStatus(ctx, newOrderResponse(order), http.StatusCreated)
}

// Release frees reserved stock after a non-recoverable payment error on the
// client. Responds 201 whether or not a pending checkout was still there.
func (ch *CheckoutHandler) Release(ctx *gin.Context) {
	authorizationID := ctx.Param("authorizationID")

	if err := ch.service.ReleaseCheckout(ctx, authorizationID); err != nil {
		ch.handleError(ctx, err)
		return
	}

	recordCheckout("release", "released")
	ch.handleSuccessWithStatus(ctx, gin.H{"data": "checkout release handled"}, http.StatusCreated)
}
