package domain

import (
	"context"
	"time"
)

type Genre string

const (
	GenreAction      Genre = "Action"
	GenreComedy      Genre = "Comedy"
	GenreDrama       Genre = "Drama"
	GenreRomance     Genre = "Romance"
	GenreDocumentary Genre = "Documentary"
	GenreThriller    Genre = "Thriller"
	GenreHorror      Genre = "Horror"
	GenreSciFi       Genre = "Science Fiction"
)

func Genres() []Genre {
	return []Genre{
		GenreAction,
		GenreComedy,
		GenreDrama,
		GenreRomance,
		GenreDocumentary,
		GenreThriller,
		GenreHorror,
		GenreSciFi,
	}
}

func (g Genre) Valid() bool {
	for _, v := range Genres() {
		if g == v {
			return true
		}
	}

	return false
}

type Movie struct {
	ID       int
	Title    string
	Synopsis string
	Rating   string
	Duration int
	Genre    Genre
	Window   ExhibitionWindow
}

// ExhibitionWindow is the inclusive [Start, End] calendar-day range a movie
// is publicly scheduled for. Start and End carry date precision only; the
// normalized form expands them to the full first and last instant of their
// respective days.
type ExhibitionWindow struct {
	Start time.Time
	End   time.Time
}

func (w ExhibitionWindow) Normalized() ExhibitionWindow {
	start := w.Start
	end := w.End

	return ExhibitionWindow{
		Start: time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location()),
		End:   time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999_000_000, end.Location()),
	}
}

func (w ExhibitionWindow) Contains(t time.Time) bool {
	n := w.Normalized()

	return !t.Before(n.Start) && !t.After(n.End)
}

func (w ExhibitionWindow) Ordered() bool {
	n := w.Normalized()

	return !n.End.Before(n.Start)
}

type MovieRepository interface {
	GetAll(ctx context.Context) ([]Movie, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Create(ctx context.Context, movie Movie) (*Movie, error)
	Update(ctx context.Context, movie Movie) (*Movie, error)
	Delete(ctx context.Context, id int) error
}
