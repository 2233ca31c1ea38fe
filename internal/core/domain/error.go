package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")

	// * Business errors.
	ErrEmptyBasket              = errors.New("basket is empty")
	ErrProvisionalOrderNotFound = errors.New("no pending checkout found for authorization")
	ErrPaymentGateway           = errors.New("payment gateway request failed")
	ErrPaymentCapture           = errors.New("payment capture failed")
	ErrOrderConsistency         = errors.New("authorization does not match pending checkout")
)

// StockShortage reports a product whose available stock cannot cover the
// requested quantity.
type StockShortage struct {
	ProductID uint64 `json:"productId"`
	Available int32  `json:"available"`
	Requested int32  `json:"requested"`
}

type OutOfStockError struct {
	Items []StockShortage
}

func (e *OutOfStockError) Error() string {
	parts := make([]string, 0, len(e.Items))
	for _, i := range e.Items {
		parts = append(parts, fmt.Sprintf("product %d: %d available, %d requested", i.ProductID, i.Available, i.Requested))
	}
	return "not enough stock: " + strings.Join(parts, "; ")
}

type ProductsNotFoundError struct {
	IDs []uint64
}

func (e *ProductsNotFoundError) Error() string {
	return fmt.Sprintf("products not found: %v", e.IDs)
}
