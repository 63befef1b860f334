package repository

import (
	"context"
	"strconv"

	"github.com/motinhapro/CinemaWeb/internal/domain"
	"github.com/motinhapro/CinemaWeb/internal/store"
	"github.com/shopspring/decimal"
)

type RestTicketRepository struct {
	client *store.Client
}

func NewRestTicketRepository(client *store.Client) *RestTicketRepository {
	return &RestTicketRepository{
		client: client,
	}
}

type ticketRecord struct {
	ID         int             `json:"id,omitempty"`
	ShowtimeID int             `json:"showtimeId"`
	Fare       string          `json:"fare"`
	Price      decimal.Decimal `json:"price"`
	Seat       string          `json:"seat"`
}

func toTicketRecord(t domain.Ticket) ticketRecord {
	return ticketRecord{
		ID:         t.ID,
		ShowtimeID: t.ShowtimeID,
		Fare:       string(t.Fare),
		Price:      t.Price,
		Seat:       t.SeatCode,
	}
}

func (r ticketRecord) toDomain() domain.Ticket {
	return domain.Ticket{
		ID:         r.ID,
		ShowtimeID: r.ShowtimeID,
		Fare:       domain.Fare(r.Fare),
		Price:      r.Price,
		SeatCode:   r.Seat,
	}
}

func (p *RestTicketRepository) GetByShowtime(ctx context.Context, showtimeID int) ([]domain.Ticket, error) {
	var records []ticketRecord

	opts := &store.ListOptions{
		Filter: map[string]string{"showtimeId": strconv.Itoa(showtimeID)},
	}

	err := p.client.List(ctx, "tickets", opts, &records)
	if err != nil {
		return nil, mapStoreError(err)
	}

	tickets := make([]domain.Ticket, len(records))
	for i, record := range records {
		tickets[i] = record.toDomain()
	}

	return tickets, nil
}

func (p *RestTicketRepository) Create(ctx context.Context, ticket domain.Ticket) (*domain.Ticket, error) {
	record := toTicketRecord(ticket)
	record.ID = 0

	var created ticketRecord

	err := p.client.Create(ctx, "tickets", record, &created)
	if err != nil {
		return nil, mapStoreError(err)
	}

	result := created.toDomain()

	return &result, nil
}
