package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type Fare string

const (
	FareFull Fare = "FULL"
	FareHalf Fare = "HALF"
)

func (f Fare) Valid() bool {
	return f == FareFull || f == FareHalf
}

// TicketPrice derives the fare price from the catalog base price. HALF is
// exactly half of FULL, rounded to cents.
func TicketPrice(basePrice decimal.Decimal, fare Fare) decimal.Decimal {
	if fare == FareHalf {
		return basePrice.DivRound(decimal.NewFromInt(2), 2)
	}

	return basePrice
}

type Ticket struct {
	ID         int
	ShowtimeID int
	Fare       Fare
	Price      decimal.Decimal
	SeatCode   string
}

type TicketRepository interface {
	GetByShowtime(ctx context.Context, showtimeID int) ([]Ticket, error)
	Create(ctx context.Context, ticket Ticket) (*Ticket, error)
}
