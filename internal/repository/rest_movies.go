package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/motinhapro/CinemaWeb/internal/domain"
	"github.com/motinhapro/CinemaWeb/internal/store"
)

type RestMovieRepository struct {
	client *store.Client
}

func NewRestMovieRepository(client *store.Client) *RestMovieRepository {
	return &RestMovieRepository{
		client: client,
	}
}

type movieRecord struct {
	ID        int    `json:"id,omitempty"`
	Title     string `json:"title"`
	Synopsis  string `json:"synopsis"`
	Rating    string `json:"rating"`
	Duration  int    `json:"duration"`
	Genre     string `json:"genre"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func toMovieRecord(m domain.Movie) movieRecord {
	return movieRecord{
		ID:        m.ID,
		Title:     m.Title,
		Synopsis:  m.Synopsis,
		Rating:    m.Rating,
		Duration:  m.Duration,
		Genre:     string(m.Genre),
		StartDate: m.Window.Start.Format(dateLayout),
		EndDate:   m.Window.End.Format(dateLayout),
	}
}

func (r movieRecord) toDomain() (domain.Movie, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return domain.Movie{}, fmt.Errorf("movie %d has malformed start date %q: %w", r.ID, r.StartDate, err)
	}

	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return domain.Movie{}, fmt.Errorf("movie %d has malformed end date %q: %w", r.ID, r.EndDate, err)
	}

	return domain.Movie{
		ID:       r.ID,
		Title:    r.Title,
		Synopsis: r.Synopsis,
		Rating:   r.Rating,
		Duration: r.Duration,
		Genre:    domain.Genre(r.Genre),
		Window:   domain.ExhibitionWindow{Start: start, End: end},
	}, nil
}

func (p *RestMovieRepository) GetAll(ctx context.Context) ([]domain.Movie, error) {
	var records []movieRecord

	err := p.client.List(ctx, "movies", nil, &records)
	if err != nil {
		return nil, mapStoreError(err)
	}

	movies := make([]domain.Movie, len(records))

	for i, record := range records {
		movie, err := record.toDomain()
		if err != nil {
			return nil, err
		}

		movies[i] = movie
	}

	return movies, nil
}

func (p *RestMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	var record movieRecord

	err := p.client.Get(ctx, "movies", id, nil, &record)
	if err != nil {
		return nil, mapStoreError(err)
	}

	movie, err := record.toDomain()
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

func (p *RestMovieRepository) Create(ctx context.Context, movie domain.Movie) (*domain.Movie, error) {
	record := toMovieRecord(movie)
	record.ID = 0

	var created movieRecord

	err := p.client.Create(ctx, "movies", record, &created)
	if err != nil {
		return nil, mapStoreError(err)
	}

	result, err := created.toDomain()
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (p *RestMovieRepository) Update(ctx context.Context, movie domain.Movie) (*domain.Movie, error) {
	var updated movieRecord

	err := p.client.Update(ctx, "movies", movie.ID, toMovieRecord(movie), &updated)
	if err != nil {
		return nil, mapStoreError(err)
	}

	result, err := updated.toDomain()
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (p *RestMovieRepository) Delete(ctx context.Context, id int) error {
	return mapStoreError(p.client.Delete(ctx, "movies", id))
}
