package domain

import "context"

// Room numbers are display labels and are not required to be unique.
type Room struct {
	ID       int
	Number   int
	Capacity int
}

type RoomRepository interface {
	GetAll(ctx context.Context) ([]Room, error)
	GetById(ctx context.Context, id int) (*Room, error)
	Create(ctx context.Context, room Room) (*Room, error)
	Update(ctx context.Context, room Room) (*Room, error)
	Delete(ctx context.Context, id int) error
}
