package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/motinhapro/CinemaWeb/internal/domain"
	"github.com/motinhapro/CinemaWeb/internal/mailer"
	"github.com/motinhapro/CinemaWeb/internal/mocks"
	appvalidator "github.com/motinhapro/CinemaWeb/internal/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testMocks struct {
	movies    *mocks.MockMovieRepo
	rooms     *mocks.MockRoomRepo
	showtimes *mocks.MockShowtimeRepo
	tickets   *mocks.MockTicketRepo
	snacks    *mocks.MockSnackRepo
	orders    *mocks.MockOrderRepo
	redis     *mocks.MockRedisClient
	mailer    *mailer.MockMailer
}

func newTestApplication(t *testing.T) (*Application, *testMocks) {
	t.Helper()

	tm := &testMocks{
		movies:    &mocks.MockMovieRepo{},
		rooms:     &mocks.MockRoomRepo{},
		showtimes: &mocks.MockShowtimeRepo{},
		tickets:   &mocks.MockTicketRepo{},
		snacks:    &mocks.MockSnackRepo{},
		orders:    &mocks.MockOrderRepo{},
		redis:     &mocks.MockRedisClient{},
		mailer:    &mailer.MockMailer{},
	}

	cfg := config{env: "test"}
	cfg.catalog.basePrice = decimal.RequireFromString("20.00")
	cfg.catalog.rowWidth = domain.DefaultRowWidth

	sessionManager := scs.New()
	sessionManager.Cookie.Name = "session_id"

	app := &Application{
		config:         cfg,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		redis:          tm.redis,
		validator:      appvalidator.NewValidator(),
		mailer:         tm.mailer,
		sessionManager: sessionManager,
		movieRepo:      tm.movies,
		roomRepo:       tm.rooms,
		showtimeRepo:   tm.showtimes,
		ticketRepo:     tm.tickets,
		snackRepo:      tm.snacks,
		orderRepo:      tm.orders,
	}

	return app, tm
}

func executeRequest(t *testing.T, app *Application, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()

	app.routes().ServeHTTP(rr, req)

	return rr
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()

	require.NoError(t, json.NewDecoder(rr.Body).Decode(dst))
}

// keyWithPrefix matches redis keys by namespace, since the session token in
// the key is generated per request.
func keyWithPrefix(prefix string) any {
	return mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, prefix)
	})
}

func requireStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()

	require.Equal(t, want, rr.Code, "unexpected status, body: %s", rr.Body.String())
}
