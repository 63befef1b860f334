package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CheckoutState string

const (
	CheckoutIdle            CheckoutState = "IDLE"
	CheckoutSubmitting      CheckoutState = "SUBMITTING"
	CheckoutRejected        CheckoutState = "REJECTED"
	CheckoutPartiallyFailed CheckoutState = "PARTIALLY_FAILED"
	CheckoutCommitted       CheckoutState = "COMMITTED"
)

type CheckoutInput struct {
	ShowtimeID int
	SeatCode   string
	Fare       Fare
	BasePrice  decimal.Decimal
	Cart       *Cart
	PlacedAt   time.Time
}

// CheckoutResult is the terminal state of one submission attempt together
// with whatever records that attempt produced. Ticket is set for both
// Committed and PartiallyFailed outcomes; Order only for Committed.
type CheckoutResult struct {
	State  CheckoutState
	Ticket *Ticket
	Order  *Order
	Total  decimal.Decimal
	Err    error
}

// CheckoutSequencer performs the two dependent writes of a sale: the ticket
// record first, then the order record referencing it. The store offers no
// multi-record transaction, so the second write can fail after the first has
// already taken effect; that outcome is reported as PartiallyFailed with a
// PartialCommitError rather than being folded into a generic write failure.
// No compensating delete is attempted: the orphaned ticket keeps its seat
// occupied, which is what prevents the seat from being sold twice when the
// user resubmits.
type CheckoutSequencer struct {
	tickets TicketRepository
	orders  OrderRepository
}

func NewCheckoutSequencer(tickets TicketRepository, orders OrderRepository) *CheckoutSequencer {
	return &CheckoutSequencer{
		tickets: tickets,
		orders:  orders,
	}
}

// Submit runs one submission attempt to its terminal state. Every failure is
// terminal; retrying means a fresh user-initiated submission that re-resolves
// seat inventory first.
func (s *CheckoutSequencer) Submit(ctx context.Context, input CheckoutInput) CheckoutResult {
	total := OrderTotal(input.BasePrice, input.Fare, input.Cart)

	ticket := Ticket{
		ShowtimeID: input.ShowtimeID,
		Fare:       input.Fare,
		Price:      TicketPrice(input.BasePrice, input.Fare),
		SeatCode:   input.SeatCode,
	}

	created, err := s.tickets.Create(ctx, ticket)
	if err != nil {
		return CheckoutResult{State: CheckoutRejected, Total: total, Err: err}
	}

	order := Order{
		Reference: uuid.NewString(),
		PlacedAt:  input.PlacedAt,
		Total:     total,
		Tickets:   []int{created.ID},
	}

	if input.Cart != nil {
		for _, item := range input.Cart.Items {
			order.Items = append(order.Items, OrderItem{
				SnackID:   item.SnackID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			})
		}
	}

	placed, err := s.orders.Create(ctx, order)
	if err != nil {
		return CheckoutResult{
			State:  CheckoutPartiallyFailed,
			Ticket: created,
			Total:  total,
			Err:    &PartialCommitError{TicketID: created.ID, Err: err},
		}
	}

	return CheckoutResult{
		State:  CheckoutCommitted,
		Ticket: created,
		Order:  placed,
		Total:  total,
	}
}
