package stock

import (
	"errors"
	"fmt"
)

// ErrAmountNotPositive is returned for a movement of zero or fewer pieces.
var ErrAmountNotPositive = errors.New("amount must be greater than 0")

// ErrEmptyOrder is returned when no order line requests anything.
var ErrEmptyOrder = errors.New("no items to order")

// InsufficientStockError is returned when a withdrawal exceeds the balance.
type InsufficientStockError struct {
	Article   string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d", e.Article, e.Requested, e.Available)
}

// BelowMinimumError is returned when an order line totals less than one pack.
type BelowMinimumError struct {
	Article  string
	Total    int
	PackSize int
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("order for %s is below minimum: %d < pack size %d", e.Article, e.Total, e.PackSize)
}
