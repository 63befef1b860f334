package repository

import (
	"context"

	"github.com/motinhapro/CinemaWeb/internal/domain"
	"github.com/motinhapro/CinemaWeb/internal/store"
	"github.com/shopspring/decimal"
)

type RestSnackRepository struct {
	client *store.Client
}

func NewRestSnackRepository(client *store.Client) *RestSnackRepository {
	return &RestSnackRepository{
		client: client,
	}
}

type snackRecord struct {
	ID          int             `json:"id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

func toSnackRecord(s domain.Snack) snackRecord {
	return snackRecord{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		UnitPrice:   s.UnitPrice,
	}
}

func (r snackRecord) toDomain() domain.Snack {
	return domain.Snack{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		UnitPrice:   r.UnitPrice,
	}
}

func (p *RestSnackRepository) GetAll(ctx context.Context) ([]domain.Snack, error) {
	var records []snackRecord

	err := p.client.List(ctx, "snacks", nil, &records)
	if err != nil {
		return nil, mapStoreError(err)
	}

	snacks := make([]domain.Snack, len(records))
	for i, record := range records {
		snacks[i] = record.toDomain()
	}

	return snacks, nil
}

func (p *RestSnackRepository) GetById(ctx context.Context, id int) (*domain.Snack, error) {
	var record snackRecord

	err := p.client.Get(ctx, "snacks", id, nil, &record)
	if err != nil {
		return nil, mapStoreError(err)
	}

	snack := record.toDomain()

	return &snack, nil
}

func (p *RestSnackRepository) Create(ctx context.Context, snack domain.Snack) (*domain.Snack, error) {
	record := toSnackRecord(snack)
	record.ID = 0

	var created snackRecord

	err := p.client.Create(ctx, "snacks", record, &created)
	if err != nil {
		return nil, mapStoreError(err)
	}

	result := created.toDomain()

	return &result, nil
}

func (p *RestSnackRepository) Update(ctx context.Context, snack domain.Snack) (*domain.Snack, error) {
	var updated snackRecord

	err := p.client.Update(ctx, "snacks", snack.ID, toSnackRecord(snack), &updated)
	if err != nil {
		return nil, mapStoreError(err)
	}

	result := updated.toDomain()

	return &result, nil
}

func (p *RestSnackRepository) Delete(ctx context.Context, id int) error {
	return mapStoreError(p.client.Delete(ctx, "snacks", id))
}
