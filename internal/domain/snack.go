package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type Snack struct {
	ID          int
	Name        string
	Description string
	UnitPrice   decimal.Decimal
}

type SnackRepository interface {
	GetAll(ctx context.Context) ([]Snack, error)
	GetById(ctx context.Context, id int) (*Snack, error)
	Create(ctx context.Context, snack Snack) (*Snack, error)
	Update(ctx context.Context, snack Snack) (*Snack, error)
	Delete(ctx context.Context, id int) error
}
