package domain

import "github.com/govalues/decimal"

// Product carries the stock counters mutated by reservations.
// StockAvailable and StockReserved are both non-negative at all times:
// available only decreases when a reservation succeeds, and only a release
// moves reserved quantity back.
type Product struct {
	ID             uint64
	Name           string
	Price          decimal.Decimal
	StockAvailable int32
	StockReserved  int32
}
