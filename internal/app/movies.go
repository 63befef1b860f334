package app

import (
	"errors"
	"net/http"

	"github.com/motinhapro/CinemaWeb/api"
	"github.com/motinhapro/CinemaWeb/internal/domain"
)

func toMovieResponse(movie domain.Movie) api.MovieResponse {
	return api.MovieResponse{
		Id:        movie.ID,
		Title:     movie.Title,
		Synopsis:  movie.Synopsis,
		Rating:    movie.Rating,
		Duration:  movie.Duration,
		Genre:     string(movie.Genre),
		StartDate: api.Date{Time: movie.Window.Start},
		EndDate:   api.Date{Time: movie.Window.End},
	}
}

func movieFromRequest(req api.MovieRequest) domain.Movie {
	return domain.Movie{
		Title:    req.Title,
		Synopsis: req.Synopsis,
		Rating:   req.Rating,
		Duration: req.Duration,
		Genre:    domain.Genre(req.Genre),
		Window: domain.ExhibitionWindow{
			Start: req.StartDate.Time,
			End:   req.EndDate.Time,
		},
	}
}

func (app *Application) ListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{Movies: make([]api.MovieResponse, len(movies))}
	for i, movie := range movies {
		resp.Movies[i] = toMovieResponse(movie)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(*movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req api.MovieRequest

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

	movie := movieFromRequest(req)

	if !movie.Window.Ordered() {
		app.fieldValidationResponse(w, r, api.ValidationError{
			Field: "endDate",
			Issue: "must not be before startDate",
		})
		return
	}

	created, err := app.movieRepo.Create(r.Context(), movie)
	if err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toMovieResponse(*created), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var req api.MovieRequest

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

	_, err = app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	movie := movieFromRequest(req)
	movie.ID = id

	if !movie.Window.Ordered() {
		app.fieldValidationResponse(w, r, api.ValidationError{
			Field: "endDate",
			Issue: "must not be before startDate",
		})
		return
	}

	updated, err := app.movieRepo.Update(r.Context(), movie)
	if err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(*updated), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.movieRepo.Delete(r.Context(), id)
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
