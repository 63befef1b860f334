package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/motinhapro/CinemaWeb/internal/domain"
	"github.com/shopspring/decimal"
)

var seatCodeRgx = regexp.MustCompile(`^[A-Z]-[1-9][0-9]*$`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("genre", validateGenre)
	validator.RegisterValidation("fare", validateFare)
	validator.RegisterValidation("seat_code", validateSeatCode)
	validator.RegisterValidation("positive_price", validatePositivePrice)

	return validator
}

func validateGenre(fl validator.FieldLevel) bool {
	return domain.Genre(fl.Field().String()).Valid()
}

func validateFare(fl validator.FieldLevel) bool {
	return domain.Fare(fl.Field().String()).Valid()
}

func validateSeatCode(fl validator.FieldLevel) bool {
	return seatCodeRgx.MatchString(fl.Field().String())
}

// validatePositivePrice rejects zero and negative monetary amounts. The
// `required` rule alone cannot, since any parsed decimal is a non-zero
// struct value.
func validatePositivePrice(fl validator.FieldLevel) bool {
	price, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	return price.IsPositive()
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "genre":
		return "must be a known genre"
	case "fare":
		return "must be FULL or HALF"
	case "seat_code":
		return "must be a seat code like A-1"
	case "positive_price":
		return "must be greater than zero"
	default:
		return "is invalid"
	}
}
