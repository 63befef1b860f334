package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/motinhapro/CinemaWeb/api"
	"github.com/motinhapro/CinemaWeb/internal/domain"
)

func toSeatMapResponse(showtimeID int, room domain.Room, m *domain.SeatMap) api.SeatMapResponse {
	resp := api.SeatMapResponse{
		ShowtimeId: showtimeID,
		RoomNumber: room.Number,
		Capacity:   m.Capacity,
		RowWidth:   m.RowWidth,
		Remaining:  m.Remaining(),
		SoldOut:    m.SoldOut(),
	}

	for _, seat := range m.Seats {
		row, _, _ := strings.Cut(seat.Code, "-")

		if len(resp.SeatRows) == 0 || resp.SeatRows[len(resp.SeatRows)-1].Row != row {
			resp.SeatRows = append(resp.SeatRows, api.SeatRow{Row: row})
		}

		last := &resp.SeatRows[len(resp.SeatRows)-1]
		last.Seats = append(last.Seats, api.Seat{Code: seat.Code, State: string(seat.State)})
	}

	return resp
}

// resolveSeatMap loads everything needed to project the seat grid for a
// showtime: the showtime with its room, the sold tickets, and the session's
// selected seat. A store error is written to the response and reported as a
// nil map.
func (app *Application) resolveSeatMap(w http.ResponseWriter, r *http.Request, showtimeID int) (*domain.ShowtimeDetail, *domain.SeatMap) {
	detail, err := app.showtimeRepo.GetById(r.Context(), showtimeID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return nil, nil
	}

	tickets, err := app.ticketRepo.GetByShowtime(r.Context(), showtimeID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return nil, nil
	}

	sessionID := app.sessionManager.Token(r.Context())

	selected, err := app.getSeatCursor(r.Context(), sessionID, showtimeID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return nil, nil
	}

	m := domain.ResolveSeatMap(detail.Room.Capacity, app.config.catalog.rowWidth, tickets, selected)

	return detail, m
}

func (app *Application) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	detail, m := app.resolveSeatMap(w, r, id)
	if m == nil {
		return
	}

	err = app.writeJSON(w, http.StatusOK, toSeatMapResponse(id, detail.Room, m), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) SelectSeat(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var req api.SeatSelectionRequest

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

	detail, m := app.resolveSeatMap(w, r, id)
	if m == nil {
		return
	}

	if req.Seat != "" {
		state, ok := m.StateOf(req.Seat)
		if !ok {
			app.fieldValidationResponse(w, r, api.ValidationError{
				Field: "seat",
				Issue: "is outside the room's seat grid",
			})
			return
		}

		if state == domain.SeatOccupied {
			app.editConflictResponseWithErr(w, r, domain.ErrSeatOccupied)
			return
		}
	}

	sessionID := app.sessionManager.Token(r.Context())

	err = app.setSeatCursor(r.Context(), sessionID, id, req.Seat)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	m.Reselect(req.Seat)

	err = app.writeJSON(w, http.StatusOK, toSeatMapResponse(id, detail.Room, m), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
