package domain

import "github.com/govalues/decimal"

const CurrencyGBP = "GBP"

type BasketItem struct {
	ProductID uint64
	Quantity  int32
}

// ProcessedItem is a basket line item priced against the live catalog.
type ProcessedItem struct {
	ProductID uint64          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int32           `json:"quantity"`
}

// ProcessedBasket holds consolidated, priced basket items with a unique
// product id per entry and the grand total.
type ProcessedBasket struct {
	Items     []ProcessedItem
	TotalCost decimal.Decimal
}

type Money struct {
	Currency string          `json:"currency"`
	Value    decimal.Decimal `json:"value"`
}
