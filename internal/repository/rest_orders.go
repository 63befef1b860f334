package repository

import (
	"context"
	"time"

	"github.com/motinhapro/CinemaWeb/internal/domain"
	"github.com/motinhapro/CinemaWeb/internal/store"
	"github.com/shopspring/decimal"
)

type RestOrderRepository struct {
	client *store.Client
}

func NewRestOrderRepository(client *store.Client) *RestOrderRepository {
	return &RestOrderRepository{
		client: client,
	}
}

type orderRecord struct {
	ID        int               `json:"id,omitempty"`
	Reference string            `json:"reference"`
	PlacedAt  time.Time         `json:"placedAt"`
	Total     decimal.Decimal   `json:"total"`
	Tickets   []int             `json:"tickets"`
	Items     []orderItemRecord `json:"items"`
}

type orderItemRecord struct {
	SnackID   int             `json:"snackId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

func toOrderRecord(o domain.Order) orderRecord {
	record := orderRecord{
		ID:        o.ID,
		Reference: o.Reference,
		PlacedAt:  o.PlacedAt,
		Total:     o.Total,
		Tickets:   o.Tickets,
		Items:     make([]orderItemRecord, len(o.Items)),
	}

	for i, item := range o.Items {
		record.Items[i] = orderItemRecord{
			SnackID:   item.SnackID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return record
}

func (r orderRecord) toDomain() domain.Order {
	order := domain.Order{
		ID:        r.ID,
		Reference: r.Reference,
		PlacedAt:  r.PlacedAt,
		Total:     r.Total,
		Tickets:   r.Tickets,
		Items:     make([]domain.OrderItem, len(r.Items)),
	}

	for i, item := range r.Items {
		order.Items[i] = domain.OrderItem{
			SnackID:   item.SnackID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return order
}

func (p *RestOrderRepository) GetAll(ctx context.Context) ([]domain.Order, error) {
	var records []orderRecord

	err := p.client.List(ctx, "orders", nil, &records)
	if err != nil {
		return nil, mapStoreError(err)
	}

	orders := make([]domain.Order, len(records))
	for i, record := range records {
		orders[i] = record.toDomain()
	}

	return orders, nil
}

func (p *RestOrderRepository) GetById(ctx context.Context, id int) (*domain.Order, error) {
	var record orderRecord

	err := p.client.Get(ctx, "orders", id, nil, &record)
	if err != nil {
		return nil, mapStoreError(err)
	}

	order := record.toDomain()

	return &order, nil
}

func (p *RestOrderRepository) Create(ctx context.Context, order domain.Order) (*domain.Order, error) {
	record := toOrderRecord(order)
	record.ID = 0

	var created orderRecord

	err := p.client.Create(ctx, "orders", record, &created)
	if err != nil {
		return nil, mapStoreError(err)
	}

	result := created.toDomain()

	return &result, nil
}
