package domain

import (
	"context"
	"time"
)

type Showtime struct {
	ID       int
	MovieID  int
	RoomID   int
	StartsAt time.Time
}

// ShowtimeDetail is a showtime with its referenced movie and room inlined,
// as returned by the store's relation expansion. The store enforces no
// referential integrity, so either reference may resolve to a zero value.
type ShowtimeDetail struct {
	Showtime
	Movie Movie
	Room  Room
}

// ValidateSchedule checks a candidate showtime timestamp against the movie's
// exhibition window, and, for new showtimes only, against the current time.
// It runs before any write; a failure means nothing is sent to the store.
func ValidateSchedule(startsAt time.Time, window ExhibitionWindow, now time.Time, isNew bool) error {
	if isNew && !startsAt.After(now) {
		return ErrShowtimeNotFuture
	}

	if !window.Contains(startsAt) {
		n := window.Normalized()

		return &WindowViolationError{Start: n.Start, End: n.End}
	}

	return nil
}

type ShowtimeRepository interface {
	GetAll(ctx context.Context) ([]ShowtimeDetail, error)
	GetById(ctx context.Context, id int) (*ShowtimeDetail, error)
	Create(ctx context.Context, showtime Showtime) (*Showtime, error)
	Update(ctx context.Context, showtime Showtime) (*Showtime, error)
	Delete(ctx context.Context, id int) error
}
