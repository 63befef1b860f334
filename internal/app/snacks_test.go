package app

import (
	"net/http"
	"testing"

	"github.com/motinhapro/CinemaWeb/api"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateSnack(t *testing.T) {
	app, tm := newTestApplication(t)

	created := testSnack()
	tm.snacks.On("Create", mock.Anything, mock.Anything).Return(&created, nil)

	req := api.SnackRequest{
		Name:        "Popcorn",
		Description: "Large salted popcorn",
		UnitPrice:   decimal.RequireFromString("7.50"),
	}

	rr := executeRequest(t, app, http.MethodPost, "/snacks", req)

	requireStatus(t, rr, http.StatusCreated)

	var resp api.SnackResponse
	decodeResponse(t, rr, &resp)
	require.Equal(t, 3, resp.Id)
	require.True(t, resp.UnitPrice.Equal(decimal.RequireFromString("7.50")))

	tm.snacks.AssertExpectations(t)
}

func TestCreateSnackNonPositivePrice(t *testing.T) {
	tests := []struct {
		name  string
		price string
	}{
		{name: "zero", price: "0.00"},
		{name: "negative", price: "-3.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, tm := newTestApplication(t)

			req := api.SnackRequest{
				Name:        "Popcorn",
				Description: "Large salted popcorn",
				UnitPrice:   decimal.RequireFromString(tt.price),
			}

			rr := executeRequest(t, app, http.MethodPost, "/snacks", req)

			requireStatus(t, rr, http.StatusUnprocessableEntity)

			var resp api.ValidationErrorResponse
			decodeResponse(t, rr, &resp)
			require.Len(t, resp.ValidationErrors, 1)
			require.Equal(t, "UnitPrice", resp.ValidationErrors[0].Field)
			require.Equal(t, "must be greater than zero", resp.ValidationErrors[0].Issue)

			tm.snacks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateSnackNonPositivePrice(t *testing.T) {
	app, tm := newTestApplication(t)

	req := api.SnackRequest{
		Name:        "Popcorn",
		Description: "Large salted popcorn",
		UnitPrice:   decimal.RequireFromString("-3.00"),
	}

	rr := executeRequest(t, app, http.MethodPut, "/snacks/3", req)

	requireStatus(t, rr, http.StatusUnprocessableEntity)
	tm.snacks.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
