package app

import (
	"net/http"
	"testing"
	"time"

	"github.com/motinhapro/CinemaWeb/api"
	"github.com/motinhapro/CinemaWeb/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testOrder() domain.Order {
	return domain.Order{
		ID:       3,
		PlacedAt: time.Date(2026, 8, 1, 14, 30, 0, 0, time.UTC),
		Total:    decimal.RequireFromString("27.50"),
		Tickets:  []int{7},
		Items: []domain.OrderItem{
			{SnackID: 3, Quantity: 1, UnitPrice: decimal.RequireFromString("7.50")},
		},
	}
}

func TestListOrders(t *testing.T) {
	app, tm := newTestApplication(t)

	tm.orders.On("GetAll", mock.Anything).Return([]domain.Order{testOrder()}, nil)

	rr := executeRequest(t, app, http.MethodGet, "/orders", nil)

	requireStatus(t, rr, http.StatusOK)

	var resp api.OrderListResponse
	decodeResponse(t, rr, &resp)

	require.Len(t, resp.Orders, 1)
	require.Equal(t, []int{7}, resp.Orders[0].Tickets)
	require.True(t, resp.Orders[0].Total.Equal(decimal.RequireFromString("27.50")))
}

func TestGetOrder(t *testing.T) {
	app, tm := newTestApplication(t)

	order := testOrder()
	tm.orders.On("GetById", mock.Anything, 3).Return(&order, nil)

	rr := executeRequest(t, app, http.MethodGet, "/orders/3", nil)

	requireStatus(t, rr, http.StatusOK)

	var resp api.OrderResponse
	decodeResponse(t, rr, &resp)

	require.Equal(t, 3, resp.Id)
	require.Len(t, resp.Items, 1)
	require.Equal(t, 3, resp.Items[0].SnackId)
}

func TestGetOrderNotFound(t *testing.T) {
	app, tm := newTestApplication(t)

	tm.orders.On("GetById", mock.Anything, 99).Return(nil, domain.ErrRecordNotFound)

	rr := executeRequest(t, app, http.MethodGet, "/orders/99", nil)

	requireStatus(t, rr, http.StatusNotFound)
}
