package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/motinhapro/CinemaWeb/api"
	"github.com/motinhapro/CinemaWeb/internal/domain"
)

// Checkout runs one sale submission for the session's selected seat: the
// ticket write, then the order write referencing it. The seat is re-resolved
// against the store immediately before submitting; a seat sold since
// selection aborts with a conflict before anything is written.
func (app *Application) Checkout(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var req api.CheckoutRequest

	err = app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	sessionID := app.sessionManager.Token(r.Context())

	locked, err := app.acquireCheckoutLock(r.Context(), sessionID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if !locked {
		app.editConflictResponseWithErr(w, r, domain.ErrCheckoutInFlight)
		return
	}
	defer app.releaseCheckoutLock(r.Context(), sessionID)

	detail, m := app.resolveSeatMap(w, r, id)
	if m == nil {
		return
	}

	if m.SoldOut() {
		app.editConflictResponseWithErr(w, r, domain.ErrShowtimeSoldOut)
		return
	}

	seat, err := app.getSeatCursor(r.Context(), sessionID, id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if seat == "" {
		app.fieldValidationResponse(w, r, api.ValidationError{
			Field: "seat",
			Issue: domain.ErrSeatNotSelected.Error(),
		})
		return
	}

	state, ok := m.StateOf(seat)
	if !ok {
		app.fieldValidationResponse(w, r, api.ValidationError{
			Field: "seat",
			Issue: "is outside the room's seat grid",
		})
		return
	}
	if state != domain.SeatSelected {
		app.editConflictResponseWithErr(w, r, domain.ErrSeatOccupied)
		return
	}

	cart, err := app.getCart(r.Context(), sessionID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	sequencer := domain.NewCheckoutSequencer(app.ticketRepo, app.orderRepo)

	result := sequencer.Submit(r.Context(), domain.CheckoutInput{
		ShowtimeID: id,
		SeatCode:   seat,
		Fare:       domain.Fare(req.Fare),
		BasePrice:  app.config.catalog.basePrice,
		Cart:       cart,
		PlacedAt:   time.Now().UTC(),
	})

	switch result.State {
	case domain.CheckoutCommitted:
		app.clearSale(r.Context(), sessionID, id)

		if req.CustomerEmail != "" {
			app.sendOrderReceipt(req.CustomerEmail, detail, result)
		}

		resp := api.CheckoutResponse{
			State:     string(result.State),
			OrderId:   result.Order.ID,
			Reference: result.Order.Reference,
			TicketId:  result.Ticket.ID,
			Seat:      seat,
			Total:     result.Total,
		}

		err = app.writeJSON(w, http.StatusCreated, resp, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}

	case domain.CheckoutPartiallyFailed:
		var partial *domain.PartialCommitError

		if errors.As(result.Err, &partial) {
			app.partialCommitResponse(w, r, partial)
			return
		}

		app.badGatewayResponse(w, r, result.Err)

	default:
		app.badGatewayResponse(w, r, result.Err)
	}
}

func (app *Application) sendOrderReceipt(recipient string, detail *domain.ShowtimeDetail, result domain.CheckoutResult) {
	data := map[string]any{
		"OrderID":    result.Order.ID,
		"Reference":  result.Order.Reference,
		"MovieTitle": detail.Movie.Title,
		"StartsAt":   detail.StartsAt,
		"Seat":       result.Ticket.SeatCode,
		"Fare":       result.Ticket.Fare,
		"Total":      result.Total,
	}

	app.background(func() {
		err := app.mailer.Send(recipient, "order_receipt.tmpl", data)
		if err != nil {
			app.logger.Error("failed to send order receipt", "error", err, "order_id", result.Order.ID)
		}
	})
}
