package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/motinhapro/CinemaWeb/api"
	"github.com/motinhapro/CinemaWeb/internal/domain"
)

func toShowtimeResponse(detail domain.ShowtimeDetail) api.ShowtimeResponse {
	return api.ShowtimeResponse{
		Id:         detail.ID,
		MovieId:    detail.MovieID,
		RoomId:     detail.RoomID,
		StartsAt:   detail.StartsAt,
		MovieTitle: detail.Movie.Title,
		RoomNumber: detail.Room.Number,
	}
}

func (app *Application) ListShowtimes(w http.ResponseWriter, r *http.Request) {
	showtimes, err := app.showtimeRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowtimeListResponse{Showtimes: make([]api.ShowtimeResponse, len(showtimes))}
	for i, detail := range showtimes {
		// The store enforces no referential integrity, so a deleted movie
		// or room leaves the showtime with a dangling reference.
		if detail.Movie.ID == 0 || detail.Room.ID == 0 {
			app.contextGetLogger(r).Warn("showtime references a missing record",
				"showtime_id", detail.ID,
				"movie_id", detail.MovieID,
				"room_id", detail.RoomID,
			)
		}

		resp.Showtimes[i] = toShowtimeResponse(detail)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowtime(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	detail, err := app.showtimeRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowtimeResponse(*detail), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// checkSchedule resolves the referenced movie and room and validates the
// candidate timestamp against the movie's exhibition window. Failures are
// written to the response; the boolean reports whether the showtime may
// proceed to the store.
func (app *Application) checkSchedule(w http.ResponseWriter, r *http.Request, req api.ShowtimeRequest, isNew bool) bool {
	movie, err := app.movieRepo.GetById(r.Context(), req.MovieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.fieldValidationResponse(w, r, api.ValidationError{
				Field: "movieId",
				Issue: "does not reference a known movie",
			})
		default:
			app.serverErrorResponse(w, r, err)
		}
		return false
	}

	_, err = app.roomRepo.GetById(r.Context(), req.RoomId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.fieldValidationResponse(w, r, api.ValidationError{
				Field: "roomId",
				Issue: "does not reference a known room",
			})
		default:
			app.serverErrorResponse(w, r, err)
		}
		return false
	}

	err = domain.ValidateSchedule(req.StartsAt, movie.Window, time.Now(), isNew)
	if err != nil {
		var windowErr *domain.WindowViolationError

		switch {
		case errors.Is(err, domain.ErrShowtimeNotFuture):
			app.fieldValidationResponse(w, r, api.ValidationError{
				Field: "startsAt",
				Issue: "must be in the future",
			})
		case errors.As(err, &windowErr):
			app.fieldValidationResponse(w, r, api.ValidationError{
				Field: "startsAt",
				Issue: fmt.Sprintf(
					"must fall within the movie's exhibition window (%s to %s)",
					windowErr.Start.Format("2006-01-02"),
					windowErr.End.Format("2006-01-02"),
				),
			})
		default:
			app.serverErrorResponse(w, r, err)
		}
		return false
	}

	return true
}

func (app *Application) CreateShowtime(w http.ResponseWriter, r *http.Request) {
	var req api.ShowtimeRequest

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

	if !app.checkSchedule(w, r, req, true) {
		return
	}

	showtime := domain.Showtime{MovieID: req.MovieId, RoomID: req.RoomId, StartsAt: req.StartsAt}

	created, err := app.showtimeRepo.Create(r.Context(), showtime)
	if err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}

	resp := api.ShowtimeResponse{
		Id:       created.ID,
		MovieId:  created.MovieID,
		RoomId:   created.RoomID,
		StartsAt: created.StartsAt,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateShowtime(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var req api.ShowtimeRequest

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

	_, err = app.showtimeRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	// Reschedules of already-published showtimes may keep a timestamp in
	// the past; only the window check applies.
	if !app.checkSchedule(w, r, req, false) {
		return
	}

	showtime := domain.Showtime{ID: id, MovieID: req.MovieId, RoomID: req.RoomId, StartsAt: req.StartsAt}

	updated, err := app.showtimeRepo.Update(r.Context(), showtime)
	if err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}

	resp := api.ShowtimeResponse{
		Id:       updated.ID,
		MovieId:  updated.MovieID,
		RoomId:   updated.RoomID,
		StartsAt: updated.StartsAt,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteShowtime(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.showtimeRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.badGatewayResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
