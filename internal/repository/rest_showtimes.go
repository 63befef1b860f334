package repository

import (
	"context"
	"time"

	"github.com/motinhapro/CinemaWeb/internal/domain"
	"github.com/motinhapro/CinemaWeb/internal/store"
)

type RestShowtimeRepository struct {
	client *store.Client
}

func NewRestShowtimeRepository(client *store.Client) *RestShowtimeRepository {
	return &RestShowtimeRepository{
		client: client,
	}
}

type showtimeRecord struct {
	ID       int       `json:"id,omitempty"`
	MovieID  int       `json:"movieId"`
	RoomID   int       `json:"roomId"`
	StartsAt time.Time `json:"startsAt"`

	// Present only when the store inlines references. The store enforces no
	// referential integrity, so either may be missing even when requested.
	Movie *movieRecord `json:"movie,omitempty"`
	Room  *roomRecord  `json:"room,omitempty"`
}

func toShowtimeRecord(s domain.Showtime) showtimeRecord {
	return showtimeRecord{
		ID:       s.ID,
		MovieID:  s.MovieID,
		RoomID:   s.RoomID,
		StartsAt: s.StartsAt,
	}
}

func (r showtimeRecord) toDomain() (domain.ShowtimeDetail, error) {
	detail := domain.ShowtimeDetail{
		Showtime: domain.Showtime{
			ID:       r.ID,
			MovieID:  r.MovieID,
			RoomID:   r.RoomID,
			StartsAt: r.StartsAt,
		},
	}

	if r.Movie != nil {
		movie, err := r.Movie.toDomain()
		if err != nil {
			return domain.ShowtimeDetail{}, err
		}

		detail.Movie = movie
	}

	if r.Room != nil {
		detail.Room = r.Room.toDomain()
	}

	return detail, nil
}

var showtimeExpand = []string{"movie", "room"}

func (p *RestShowtimeRepository) GetAll(ctx context.Context) ([]domain.ShowtimeDetail, error) {
	var records []showtimeRecord

	err := p.client.List(ctx, "showtimes", &store.ListOptions{Expand: showtimeExpand}, &records)
	if err != nil {
		return nil, mapStoreError(err)
	}

	showtimes := make([]domain.ShowtimeDetail, len(records))

	for i, record := range records {
		detail, err := record.toDomain()
		if err != nil {
			return nil, err
		}

		showtimes[i] = detail
	}

	return showtimes, nil
}

func (p *RestShowtimeRepository) GetById(ctx context.Context, id int) (*domain.ShowtimeDetail, error) {
	var record showtimeRecord

	err := p.client.Get(ctx, "showtimes", id, showtimeExpand, &record)
	if err != nil {
		return nil, mapStoreError(err)
	}

	detail, err := record.toDomain()
	if err != nil {
		return nil, err
	}

	return &detail, nil
}

func (p *RestShowtimeRepository) Create(ctx context.Context, showtime domain.Showtime) (*domain.Showtime, error) {
	record := toShowtimeRecord(showtime)
	record.ID = 0

	var created showtimeRecord

	err := p.client.Create(ctx, "showtimes", record, &created)
	if err != nil {
		return nil, mapStoreError(err)
	}

	detail, err := created.toDomain()
	if err != nil {
		return nil, err
	}

	return &detail.Showtime, nil
}

func (p *RestShowtimeRepository) Update(ctx context.Context, showtime domain.Showtime) (*domain.Showtime, error) {
	var updated showtimeRecord

	err := p.client.Update(ctx, "showtimes", showtime.ID, toShowtimeRecord(showtime), &updated)
	if err != nil {
		return nil, mapStoreError(err)
	}

	detail, err := updated.toDomain()
	if err != nil {
		return nil, err
	}

	return &detail.Showtime, nil
}

func (p *RestShowtimeRepository) Delete(ctx context.Context, id int) error {
	return mapStoreError(p.client.Delete(ctx, "showtimes", id))
}
