package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rgladkov/shopcheckout/internal/core/domain"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrUnauthorized:               http.StatusUnauthorized,
	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrExpiredToken:               http.StatusUnauthorized,

	domain.ErrBadRequest: http.StatusBadRequest,

	domain.ErrEmptyBasket:              http.StatusBadRequest,
	domain.ErrProvisionalOrderNotFound: http.StatusNotFound,
	domain.ErrOrderConsistency:         http.StatusConflict,
	domain.ErrPaymentGateway:           http.StatusBadGateway,
	domain.ErrPaymentCapture:           http.StatusBadGateway,
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrBadRequest.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	var outOfStock *domain.OutOfStockError
	if errors.As(err, &outOfStock) {
		// quantities are returned so the client can make the basket stock-valid
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "not enough stock",
			"items": outOfStock.Items,
		})
		return
	}

	var notFound *domain.ProductsNotFoundError
	if errors.As(err, &notFound) {
		ctx.JSON(http.StatusNotFound, gin.H{
			"error": "some products not found",
			"ids":   notFound.IDs,
		})
		return
	}

	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.JSON(statusCode, gin.H{"error": err.Error()})
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
