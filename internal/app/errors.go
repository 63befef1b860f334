package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/motinhapro/CinemaWeb/api"
	"github.com/motinhapro/CinemaWeb/internal/domain"
	appvalidator "github.com/motinhapro/CinemaWeb/internal/validator"
)

const (
	ErrInternalServer = "The server encountered a problem and could not process your request"

	// CodePartialCommit marks a checkout whose ticket was written but whose
	// order was not; the seat is taken without a recorded sale.
	CodePartialCommit = "PARTIAL_COMMIT"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	app.errorResponseWithCode(w, r, status, message, "")
}

func (app *Application) errorResponseWithCode(w http.ResponseWriter, r *http.Request, status int, message, code string) {
	resp := api.ErrorResponse{
		Message:   message,
		Code:      code,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "The requested resource not found"
	app.errorResponse(w, r, http.StatusNotFound, message)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) editConflictResponseWithErr(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusConflict, err.Error())
}

// badGatewayResponse reports a failed write against the data store: the
// submission was aborted and nothing beyond already-completed writes
// persists.
func (app *Application) badGatewayResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	message := "The data store could not process the request"
	app.errorResponse(w, r, http.StatusBadGateway, message)
}

func (app *Application) partialCommitResponse(w http.ResponseWriter, r *http.Request, partial *domain.PartialCommitError) {
	app.logError(r, partial)

	message := "The sale was only partially recorded: the ticket exists but no order references it. " +
		"The seat is no longer available; do not resell it."
	app.errorResponseWithCode(w, r, http.StatusBadGateway, message, CodePartialCommit)
}

// failedValidationResponse translates validator errors into a field-level
// 422 response.
func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrors validator.ValidationErrors

	if !errors.As(err, &validationErrors) {
		app.serverErrorResponse(w, r, err)
		return
	}

	fieldErrors := make([]api.ValidationError, len(validationErrors))
	for i, fieldError := range validationErrors {
		fieldErrors[i] = api.ValidationError{
			Field: fieldError.Field(),
			Issue: appvalidator.ValidationMessage(fieldError),
		}
	}

	app.fieldValidationResponse(w, r, fieldErrors...)
}

// fieldValidationResponse sends a 422 for failures found outside the
// validator, like the screening-window checks.
func (app *Application) fieldValidationResponse(w http.ResponseWriter, r *http.Request, fieldErrors ...api.ValidationError) {
	resp := api.ValidationErrorResponse{
		Message:          "The request failed validation",
		ValidationErrors: fieldErrors,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
	}

	err := app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}
