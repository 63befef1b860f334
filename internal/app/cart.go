package app

import (
	"errors"
	"net/http"

	"github.com/motinhapro/CinemaWeb/api"
	"github.com/motinhapro/CinemaWeb/internal/domain"
)

func toCartResponse(cart *domain.Cart) api.CartResponse {
	resp := api.CartResponse{
		Items:    make([]api.CartItem, len(cart.Items)),
		Subtotal: cart.Subtotal(),
	}

	for i, item := range cart.Items {
		resp.Items[i] = api.CartItem{
			SnackId:   item.SnackID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal(),
		}
	}

	return resp
}

func (app *Application) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID := app.sessionManager.Token(r.Context())

	cart, err := app.getCart(r.Context(), sessionID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toCartResponse(cart), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// SetCartItem sets the quantity of one snack line; zero removes the line.
// The unit price a line carries is frozen when the line first enters the
// cart.
func (app *Application) SetCartItem(w http.ResponseWriter, r *http.Request) {
	var req api.CartItemRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	snack, err := app.snackRepo.GetById(r.Context(), req.SnackId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.fieldValidationResponse(w, r, api.ValidationError{
				Field: "snackId",
				Issue: "does not reference a known snack",
			})
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	sessionID := app.sessionManager.Token(r.Context())

	cart, err := app.getCart(r.Context(), sessionID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	cart.SetItem(*snack, req.Quantity)

	err = app.saveCart(r.Context(), sessionID, cart)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toCartResponse(cart), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
