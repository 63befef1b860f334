package app

import (
	"errors"
	"net/http"

	"github.com/motinhapro/CinemaWeb/api"
	"github.com/motinhapro/CinemaWeb/internal/domain"
)

func toRoomResponse(room domain.Room) api.RoomResponse {
	return api.RoomResponse{
		Id:       room.ID,
		Number:   room.Number,
		Capacity: room.Capacity,
	}
}

func (app *Application) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := app.roomRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.RoomListResponse{Rooms: make([]api.RoomResponse, len(rooms))}
	for i, room := range rooms {
		resp.Rooms[i] = toRoomResponse(room)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	room, err := app.roomRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toRoomResponse(*room), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req api.RoomRequest

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

	room := domain.Room{Number: req.Number, Capacity: req.Capacity}

	created, err := app.roomRepo.Create(r.Context(), room)
	if err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toRoomResponse(*created), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var req api.RoomRequest

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

	_, err = app.roomRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	room := domain.Room{ID: id, Number: req.Number, Capacity: req.Capacity}

	updated, err := app.roomRepo.Update(r.Context(), room)
	if err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toRoomResponse(*updated), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.roomRepo.Delete(r.Context(), id)
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
