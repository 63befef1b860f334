package app

import (
	"errors"
	"net/http"

	"github.com/motinhapro/CinemaWeb/api"
	"github.com/motinhapro/CinemaWeb/internal/domain"
)

func toSnackResponse(snack domain.Snack) api.SnackResponse {
	return api.SnackResponse{
		Id:          snack.ID,
		Name:        snack.Name,
		Description: snack.Description,
		UnitPrice:   snack.UnitPrice,
	}
}

func (app *Application) ListSnacks(w http.ResponseWriter, r *http.Request) {
	snacks, err := app.snackRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.SnackListResponse{Snacks: make([]api.SnackResponse, len(snacks))}
	for i, snack := range snacks {
		resp.Snacks[i] = toSnackResponse(snack)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetSnack(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	snack, err := app.snackRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toSnackResponse(*snack), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateSnack(w http.ResponseWriter, r *http.Request) {
	var req api.SnackRequest

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

	snack := domain.Snack{Name: req.Name, Description: req.Description, UnitPrice: req.UnitPrice}

	created, err := app.snackRepo.Create(r.Context(), snack)
	if err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toSnackResponse(*created), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateSnack(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var req api.SnackRequest

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

	_, err = app.snackRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	snack := domain.Snack{ID: id, Name: req.Name, Description: req.Description, UnitPrice: req.UnitPrice}

	updated, err := app.snackRepo.Update(r.Context(), snack)
	if err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toSnackResponse(*updated), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteSnack(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.snackRepo.Delete(r.Context(), id)
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
