package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID int

	// Reference is the public order identifier printed on receipts. It is
	// assigned before the store write, so a partially committed sale can
	// still be traced by it.
	Reference string

	PlacedAt time.Time
	Total    decimal.Decimal
	Tickets  []int
	Items    []OrderItem
}

// OrderItem freezes a snack line at purchase time.
type OrderItem struct {
	SnackID   int
	Quantity  int
	UnitPrice decimal.Decimal
}

type OrderRepository interface {
	GetAll(ctx context.Context) ([]Order, error)
	GetById(ctx context.Context, id int) (*Order, error)
	Create(ctx context.Context, order Order) (*Order, error)
}
