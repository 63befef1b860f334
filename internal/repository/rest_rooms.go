package repository

import (
	"context"

	"github.com/motinhapro/CinemaWeb/internal/domain"
	"github.com/motinhapro/CinemaWeb/internal/store"
)

type RestRoomRepository struct {
	client *store.Client
}

func NewRestRoomRepository(client *store.Client) *RestRoomRepository {
	return &RestRoomRepository{
		client: client,
	}
}

type roomRecord struct {
	ID       int `json:"id,omitempty"`
	Number   int `json:"number"`
	Capacity int `json:"capacity"`
}

func toRoomRecord(room domain.Room) roomRecord {
	return roomRecord{ID: room.ID, Number: room.Number, Capacity: room.Capacity}
}

func (r roomRecord) toDomain() domain.Room {
	return domain.Room{ID: r.ID, Number: r.Number, Capacity: r.Capacity}
}

func (p *RestRoomRepository) GetAll(ctx context.Context) ([]domain.Room, error) {
	var records []roomRecord

	err := p.client.List(ctx, "rooms", nil, &records)
	if err != nil {
		return nil, mapStoreError(err)
	}

	rooms := make([]domain.Room, len(records))
	for i, record := range records {
		rooms[i] = record.toDomain()
	}

	return rooms, nil
}

func (p *RestRoomRepository) GetById(ctx context.Context, id int) (*domain.Room, error) {
	var record roomRecord

	err := p.client.Get(ctx, "rooms", id, nil, &record)
	if err != nil {
		return nil, mapStoreError(err)
	}

	room := record.toDomain()

	return &room, nil
}

func (p *RestRoomRepository) Create(ctx context.Context, room domain.Room) (*domain.Room, error) {
	record := toRoomRecord(room)
	record.ID = 0

	var created roomRecord

	err := p.client.Create(ctx, "rooms", record, &created)
	if err != nil {
		return nil, mapStoreError(err)
	}

	result := created.toDomain()

	return &result, nil
}

func (p *RestRoomRepository) Update(ctx context.Context, room domain.Room) (*domain.Room, error) {
	var updated roomRecord

	err := p.client.Update(ctx, "rooms", room.ID, toRoomRecord(room), &updated)
	if err != nil {
		return nil, mapStoreError(err)
	}

	result := updated.toDomain()

	return &result, nil
}

func (p *RestRoomRepository) Delete(ctx context.Context, id int) error {
	return mapStoreError(p.client.Delete(ctx, "rooms", id))
}
