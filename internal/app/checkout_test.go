package app

import (
	"errors"
	"net/http"
	"testing"

	"github.com/motinhapro/CinemaWeb/api"
	"github.com/motinhapro/CinemaWeb/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckoutCommitted(t *testing.T) {
	app, tm := newTestApplication(t)

	detail := testShowtimeDetail()
	tm.showtimes.On("GetById", mock.Anything, 10).Return(&detail, nil)
	tm.tickets.On("GetByShowtime", mock.Anything, 10).Return([]domain.Ticket{}, nil)

	tm.redis.On("SetNX", mock.Anything, keyWithPrefix("checkout_lock:"), mock.Anything, mock.Anything).Return(redis.NewBoolResult(true, nil))
	tm.redis.On("Get", mock.Anything, keyWithPrefix("seat_cursor:")).Return(redis.NewStringResult("A-4", nil))
	tm.redis.On("Get", mock.Anything, keyWithPrefix("cart:")).Return(redis.NewStringResult("", redis.Nil))
	tm.redis.On("Del", mock.Anything, mock.Anything).Return(redis.NewIntResult(1, nil))

	ticket := domain.Ticket{ID: 7, ShowtimeID: 10, Fare: domain.FareFull, SeatCode: "A-4", Price: decimal.RequireFromString("20.00")}
	tm.tickets.On("Create", mock.Anything, mock.Anything).Return(&ticket, nil)

	order := domain.Order{
		ID:        3,
		Reference: "0b9cbf1e-9d3c-4a55-8a68-2f4a3f2e9f10",
		Total:     decimal.RequireFromString("20.00"),
		Tickets:   []int{7},
	}
	tm.orders.On("Create", mock.Anything, mock.Anything).Return(&order, nil)

	rr := executeRequest(t, app, http.MethodPost, "/showtimes/10/checkout", api.CheckoutRequest{
		Fare:          "FULL",
		CustomerEmail: "guest@example.com",
	})

	requireStatus(t, rr, http.StatusCreated)

	var resp api.CheckoutResponse
	decodeResponse(t, rr, &resp)

	require.Equal(t, "COMMITTED", resp.State)
	require.Equal(t, 3, resp.OrderId)
	require.Equal(t, order.Reference, resp.Reference)
	require.Equal(t, 7, resp.TicketId)
	require.Equal(t, "A-4", resp.Seat)
	require.True(t, resp.Total.Equal(decimal.RequireFromString("20.00")))

	// The receipt mail runs on a background goroutine.
	app.wg.Wait()

	require.Len(t, tm.mailer.Sent, 1)
	require.Equal(t, "guest@example.com", tm.mailer.Sent[0].Recipient)
	require.Equal(t, "order_receipt.tmpl", tm.mailer.Sent[0].TemplateFile)

	tm.tickets.AssertExpectations(t)
	tm.orders.AssertExpectations(t)
}

func TestCheckoutHalfFareWithSnacks(t *testing.T) {
	app, tm := newTestApplication(t)

	detail := testShowtimeDetail()
	tm.showtimes.On("GetById", mock.Anything, 10).Return(&detail, nil)
	tm.tickets.On("GetByShowtime", mock.Anything, 10).Return([]domain.Ticket{}, nil)

	cart := `{"Items":[{"SnackID":3,"Name":"Popcorn","Quantity":2,"UnitPrice":"7.50"}]}`

	tm.redis.On("SetNX", mock.Anything, keyWithPrefix("checkout_lock:"), mock.Anything, mock.Anything).Return(redis.NewBoolResult(true, nil))
	tm.redis.On("Get", mock.Anything, keyWithPrefix("seat_cursor:")).Return(redis.NewStringResult("A-4", nil))
	tm.redis.On("Get", mock.Anything, keyWithPrefix("cart:")).Return(redis.NewStringResult(cart, nil))
	tm.redis.On("Del", mock.Anything, mock.Anything).Return(redis.NewIntResult(1, nil))

	ticket := domain.Ticket{ID: 7, ShowtimeID: 10, Fare: domain.FareHalf, SeatCode: "A-4", Price: decimal.RequireFromString("10.00")}
	tm.tickets.On("Create", mock.Anything, mock.MatchedBy(func(tk domain.Ticket) bool {
		return tk.Fare == domain.FareHalf && tk.Price.Equal(decimal.RequireFromString("10.00"))
	})).Return(&ticket, nil)

	order := domain.Order{ID: 3, Total: decimal.RequireFromString("25.00"), Tickets: []int{7}}
	tm.orders.On("Create", mock.Anything, mock.MatchedBy(func(o domain.Order) bool {
		return o.Total.Equal(decimal.RequireFromString("25.00")) && len(o.Items) == 1
	})).Return(&order, nil)

	rr := executeRequest(t, app, http.MethodPost, "/showtimes/10/checkout", api.CheckoutRequest{Fare: "HALF"})

	requireStatus(t, rr, http.StatusCreated)

	var resp api.CheckoutResponse
	decodeResponse(t, rr, &resp)
	require.True(t, resp.Total.Equal(decimal.RequireFromString("25.00")))

	tm.tickets.AssertExpectations(t)
	tm.orders.AssertExpectations(t)
}

func TestCheckoutWithoutSelectedSeat(t *testing.T) {
	app, tm := newTestApplication(t)

	detail := testShowtimeDetail()
	tm.showtimes.On("GetById", mock.Anything, 10).Return(&detail, nil)
	tm.tickets.On("GetByShowtime", mock.Anything, 10).Return([]domain.Ticket{}, nil)

	tm.redis.On("SetNX", mock.Anything, keyWithPrefix("checkout_lock:"), mock.Anything, mock.Anything).Return(redis.NewBoolResult(true, nil))
	tm.redis.On("Get", mock.Anything, keyWithPrefix("seat_cursor:")).Return(redis.NewStringResult("", redis.Nil))
	tm.redis.On("Del", mock.Anything, mock.Anything).Return(redis.NewIntResult(1, nil))

	rr := executeRequest(t, app, http.MethodPost, "/showtimes/10/checkout", api.CheckoutRequest{Fare: "FULL"})

	requireStatus(t, rr, http.StatusUnprocessableEntity)
	tm.tickets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutSeatTakenSinceSelection(t *testing.T) {
	app, tm := newTestApplication(t)

	detail := testShowtimeDetail()
	tm.showtimes.On("GetById", mock.Anything, 10).Return(&detail, nil)
	tm.tickets.On("GetByShowtime", mock.Anything, 10).Return(soldTickets("A-4"), nil)

	tm.redis.On("SetNX", mock.Anything, keyWithPrefix("checkout_lock:"), mock.Anything, mock.Anything).Return(redis.NewBoolResult(true, nil))
	tm.redis.On("Get", mock.Anything, keyWithPrefix("seat_cursor:")).Return(redis.NewStringResult("A-4", nil))
	tm.redis.On("Del", mock.Anything, mock.Anything).Return(redis.NewIntResult(1, nil))

	rr := executeRequest(t, app, http.MethodPost, "/showtimes/10/checkout", api.CheckoutRequest{Fare: "FULL"})

	requireStatus(t, rr, http.StatusConflict)
	tm.tickets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutSoldOutShowtime(t *testing.T) {
	app, tm := newTestApplication(t)

	detail := testShowtimeDetail()
	tm.showtimes.On("GetById", mock.Anything, 10).Return(&detail, nil)
	tm.tickets.On("GetByShowtime", mock.Anything, 10).Return(soldTickets(domain.EnumerateSeatCodes(16, 8)...), nil)

	tm.redis.On("SetNX", mock.Anything, keyWithPrefix("checkout_lock:"), mock.Anything, mock.Anything).Return(redis.NewBoolResult(true, nil))
	tm.redis.On("Get", mock.Anything, keyWithPrefix("seat_cursor:")).Return(redis.NewStringResult("", redis.Nil))
	tm.redis.On("Del", mock.Anything, mock.Anything).Return(redis.NewIntResult(1, nil))

	rr := executeRequest(t, app, http.MethodPost, "/showtimes/10/checkout", api.CheckoutRequest{Fare: "FULL"})

	requireStatus(t, rr, http.StatusConflict)
	tm.tickets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutLockBusy(t *testing.T) {
	app, tm := newTestApplication(t)

	tm.redis.On("SetNX", mock.Anything, keyWithPrefix("checkout_lock:"), mock.Anything, mock.Anything).Return(redis.NewBoolResult(false, nil))

	rr := executeRequest(t, app, http.MethodPost, "/showtimes/10/checkout", api.CheckoutRequest{Fare: "FULL"})

	requireStatus(t, rr, http.StatusConflict)
	tm.showtimes.AssertNotCalled(t, "GetById", mock.Anything, mock.Anything)
}

func TestCheckoutRejected(t *testing.T) {
	app, tm := newTestApplication(t)

	detail := testShowtimeDetail()
	tm.showtimes.On("GetById", mock.Anything, 10).Return(&detail, nil)
	tm.tickets.On("GetByShowtime", mock.Anything, 10).Return([]domain.Ticket{}, nil)

	tm.redis.On("SetNX", mock.Anything, keyWithPrefix("checkout_lock:"), mock.Anything, mock.Anything).Return(redis.NewBoolResult(true, nil))
	tm.redis.On("Get", mock.Anything, keyWithPrefix("seat_cursor:")).Return(redis.NewStringResult("A-4", nil))
	tm.redis.On("Get", mock.Anything, keyWithPrefix("cart:")).Return(redis.NewStringResult("", redis.Nil))
	tm.redis.On("Del", mock.Anything, mock.Anything).Return(redis.NewIntResult(1, nil))

	tm.tickets.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("store unavailable"))

	rr := executeRequest(t, app, http.MethodPost, "/showtimes/10/checkout", api.CheckoutRequest{Fare: "FULL"})

	requireStatus(t, rr, http.StatusBadGateway)

	var resp api.ErrorResponse
	decodeResponse(t, rr, &resp)
	require.Empty(t, resp.Code)

	tm.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutPartialCommit(t *testing.T) {
	app, tm := newTestApplication(t)

	detail := testShowtimeDetail()
	tm.showtimes.On("GetById", mock.Anything, 10).Return(&detail, nil)
	tm.tickets.On("GetByShowtime", mock.Anything, 10).Return([]domain.Ticket{}, nil)

	tm.redis.On("SetNX", mock.Anything, keyWithPrefix("checkout_lock:"), mock.Anything, mock.Anything).Return(redis.NewBoolResult(true, nil))
	tm.redis.On("Get", mock.Anything, keyWithPrefix("seat_cursor:")).Return(redis.NewStringResult("A-4", nil))
	tm.redis.On("Get", mock.Anything, keyWithPrefix("cart:")).Return(redis.NewStringResult("", redis.Nil))
	tm.redis.On("Del", mock.Anything, mock.Anything).Return(redis.NewIntResult(1, nil))

	ticket := domain.Ticket{ID: 7, ShowtimeID: 10, Fare: domain.FareFull, SeatCode: "A-4", Price: decimal.RequireFromString("20.00")}
	tm.tickets.On("Create", mock.Anything, mock.Anything).Return(&ticket, nil)
	tm.orders.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("store unavailable"))

	rr := executeRequest(t, app, http.MethodPost, "/showtimes/10/checkout", api.CheckoutRequest{Fare: "FULL"})

	requireStatus(t, rr, http.StatusBadGateway)

	var resp api.ErrorResponse
	decodeResponse(t, rr, &resp)
	require.Equal(t, CodePartialCommit, resp.Code)

	// No compensating delete exists on the ticket repository; the orphaned
	// ticket keeps the seat out of inventory.
	require.Empty(t, tm.mailer.Sent)
}
