package app

import (
	"errors"
	"net/http"

	"github.com/motinhapro/CinemaWeb/api"
	"github.com/motinhapro/CinemaWeb/internal/domain"
)

func toOrderResponse(order domain.Order) api.OrderResponse {
	resp := api.OrderResponse{
		Id:        order.ID,
		Reference: order.Reference,
		PlacedAt:  order.PlacedAt,
		Total:     order.Total,
		Tickets:   order.Tickets,
		Items:     make([]api.OrderItemResponse, len(order.Items)),
	}

	for i, item := range order.Items {
		resp.Items[i] = api.OrderItemResponse{
			SnackId:   item.SnackID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return resp
}

func (app *Application) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := app.orderRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.OrderListResponse{Orders: make([]api.OrderResponse, len(orders))}
	for i, order := range orders {
		resp.Orders[i] = toOrderResponse(order)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	order, err := app.orderRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toOrderResponse(*order), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
