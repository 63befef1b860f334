package app

import (
	"net/http"
	"testing"
	"time"

	"github.com/motinhapro/CinemaWeb/api"
	"github.com/motinhapro/CinemaWeb/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testMovie() domain.Movie {
	return domain.Movie{
		ID:       1,
		Title:    "Interstellar",
		Synopsis: "A crew travels through a wormhole in search of a new home.",
		Rating:   "PG-13",
		Duration: 169,
		Genre:    domain.GenreSciFi,
		Window: domain.ExhibitionWindow{
			Start: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestListMovies(t *testing.T) {
	app, tm := newTestApplication(t)

	tm.movies.On("GetAll", mock.Anything).Return([]domain.Movie{testMovie()}, nil)

	rr := executeRequest(t, app, http.MethodGet, "/movies", nil)

	requireStatus(t, rr, http.StatusOK)

	var resp api.MovieListResponse
	decodeResponse(t, rr, &resp)

	require.Len(t, resp.Movies, 1)
	require.Equal(t, "Interstellar", resp.Movies[0].Title)
	require.Equal(t, "Science Fiction", resp.Movies[0].Genre)
	require.Equal(t, "2026-01-01", resp.Movies[0].StartDate.Format("2006-01-02"))
}

func TestGetMovieNotFound(t *testing.T) {
	app, tm := newTestApplication(t)

	tm.movies.On("GetById", mock.Anything, 99).Return(nil, domain.ErrRecordNotFound)

	rr := executeRequest(t, app, http.MethodGet, "/movies/99", nil)

	requireStatus(t, rr, http.StatusNotFound)
}

func TestCreateMovie(t *testing.T) {
	app, tm := newTestApplication(t)

	created := testMovie()
	tm.movies.On("Create", mock.Anything, mock.Anything).Return(&created, nil)

	req := api.MovieRequest{
		Title:     "Interstellar",
		Synopsis:  "A crew travels through a wormhole in search of a new home.",
		Rating:    "PG-13",
		Duration:  169,
		Genre:     "Science Fiction",
		StartDate: api.Date{Time: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		EndDate:   api.Date{Time: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)},
	}

	rr := executeRequest(t, app, http.MethodPost, "/movies", req)

	requireStatus(t, rr, http.StatusCreated)

	var resp api.MovieResponse
	decodeResponse(t, rr, &resp)
	require.Equal(t, 1, resp.Id)

	tm.movies.AssertExpectations(t)
}

func TestCreateMovieUnknownGenre(t *testing.T) {
	app, _ := newTestApplication(t)

	req := api.MovieRequest{
		Title:     "Interstellar",
		Synopsis:  "A crew travels through a wormhole in search of a new home.",
		Rating:    "PG-13",
		Duration:  169,
		Genre:     "Space Opera",
		StartDate: api.Date{Time: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		EndDate:   api.Date{Time: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)},
	}

	rr := executeRequest(t, app, http.MethodPost, "/movies", req)

	requireStatus(t, rr, http.StatusUnprocessableEntity)

	var resp api.ValidationErrorResponse
	decodeResponse(t, rr, &resp)
	require.Len(t, resp.ValidationErrors, 1)
	require.Equal(t, "Genre", resp.ValidationErrors[0].Field)
}

func TestCreateMovieWindowReversed(t *testing.T) {
	app, _ := newTestApplication(t)

	req := api.MovieRequest{
		Title:     "Interstellar",
		Synopsis:  "A crew travels through a wormhole in search of a new home.",
		Rating:    "PG-13",
		Duration:  169,
		Genre:     "Science Fiction",
		StartDate: api.Date{Time: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)},
		EndDate:   api.Date{Time: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	rr := executeRequest(t, app, http.MethodPost, "/movies", req)

	requireStatus(t, rr, http.StatusUnprocessableEntity)

	var resp api.ValidationErrorResponse
	decodeResponse(t, rr, &resp)
	require.Equal(t, "endDate", resp.ValidationErrors[0].Field)
}

func TestDeleteMovie(t *testing.T) {
	app, tm := newTestApplication(t)

	tm.movies.On("Delete", mock.Anything, 1).Return(nil)

	rr := executeRequest(t, app, http.MethodDelete, "/movies/1", nil)

	requireStatus(t, rr, http.StatusNoContent)
	tm.movies.AssertExpectations(t)
}
