package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrSeatOccupied      = errors.New("seat is already occupied")
	ErrSeatNotSelected   = errors.New("no seat is selected")
	ErrShowtimeSoldOut   = errors.New("showtime is sold out")
	ErrShowtimeNotFuture = errors.New("showtime must be scheduled in the future")
	ErrCheckoutInFlight  = errors.New("another submission is already in progress")
)

// WindowViolationError reports a showtime scheduled outside the movie's
// exhibition window. Start and End carry the normalized bounds for display.
type WindowViolationError struct {
	Start time.Time
	End   time.Time
}

func (e *WindowViolationError) Error() string {
	return fmt.Sprintf(
		"showtime must be between %s and %s",
		e.Start.Format("2006-01-02 15:04:05.000"),
		e.End.Format("2006-01-02 15:04:05.000"),
	)
}

// PartialCommitError reports a checkout where the ticket write succeeded but
// the order write did not. The ticket already occupies its seat in the store,
// so the failure must not be treated as a clean rejection.
type PartialCommitError struct {
	TicketID int
	Err      error
}

func (e *PartialCommitError) Error() string {
	return fmt.Sprintf("order creation failed after ticket %d was written: %v", e.TicketID, e.Err)
}

func (e *PartialCommitError) Unwrap() error {
	return e.Err
}
