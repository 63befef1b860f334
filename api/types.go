// Package api defines the request and response bodies of the HTTP surface.
package api

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Date is a calendar day serialized as "2006-01-02".
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("date must be a %q string", "2006-01-02")
	}

	t, err := time.Parse("2006-01-02", s[1:len(s)-1])
	if err != nil {
		return err
	}

	d.Time = t

	return nil
}

type ErrorResponse struct {
	Message   string    `json:"message"`
	Code      string    `json:"code,omitempty"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type MovieRequest struct {
	Title     string `json:"title" validate:"required"`
	Synopsis  string `json:"synopsis" validate:"required,min=10"`
	Rating    string `json:"rating" validate:"required"`
	Duration  int    `json:"duration" validate:"required,min=1"`
	Genre     string `json:"genre" validate:"required,genre"`
	StartDate Date   `json:"startDate" validate:"required"`
	EndDate   Date   `json:"endDate" validate:"required"`
}

type MovieResponse struct {
	Id        int    `json:"id"`
	Title     string `json:"title"`
	Synopsis  string `json:"synopsis"`
	Rating    string `json:"rating"`
	Duration  int    `json:"duration"`
	Genre     string `json:"genre"`
	StartDate Date   `json:"startDate"`
	EndDate   Date   `json:"endDate"`
}

type MovieListResponse struct {
	Movies []MovieResponse `json:"movies"`
}

type RoomRequest struct {
	Number   int `json:"number" validate:"required,min=1"`
	Capacity int `json:"capacity" validate:"required,min=1"`
}

type RoomResponse struct {
	Id       int `json:"id"`
	Number   int `json:"number"`
	Capacity int `json:"capacity"`
}

type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

type ShowtimeRequest struct {
	MovieId  int       `json:"movieId" validate:"required,min=1"`
	RoomId   int       `json:"roomId" validate:"required,min=1"`
	StartsAt time.Time `json:"startsAt" validate:"required"`
}

type ShowtimeResponse struct {
	Id       int       `json:"id"`
	MovieId  int       `json:"movieId"`
	RoomId   int       `json:"roomId"`
	StartsAt time.Time `json:"startsAt"`

	MovieTitle string `json:"movieTitle,omitempty"`
	RoomNumber int    `json:"roomNumber,omitempty"`
}

type ShowtimeListResponse struct {
	Showtimes []ShowtimeResponse `json:"showtimes"`
}

type SnackRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description" validate:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" validate:"required,positive_price"`
}

type SnackResponse struct {
	Id          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

type SnackListResponse struct {
	Snacks []SnackResponse `json:"snacks"`
}

type Seat struct {
	Code  string `json:"code"`
	State string `json:"state"`
}

type SeatRow struct {
	Row   string `json:"row"`
	Seats []Seat `json:"seats"`
}

type SeatMapResponse struct {
	ShowtimeId int       `json:"showtimeId"`
	RoomNumber int       `json:"roomNumber"`
	Capacity   int       `json:"capacity"`
	RowWidth   int       `json:"rowWidth"`
	Remaining  int       `json:"remaining"`
	SoldOut    bool      `json:"soldOut"`
	SeatRows   []SeatRow `json:"seatRows"`
}

// SeatSelectionRequest sets the session's seat cursor; an empty seat clears
// it.
type SeatSelectionRequest struct {
	Seat string `json:"seat" validate:"omitempty,seat_code"`
}

type CartItemRequest struct {
	SnackId  int `json:"snackId" validate:"required,min=1"`
	Quantity int `json:"quantity" validate:"min=0"`
}

type CartItem struct {
	SnackId   int             `json:"snackId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type CartResponse struct {
	Items    []CartItem      `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type CheckoutRequest struct {
	Fare string `json:"fare" validate:"required,fare"`

	// CustomerEmail, when present, receives the order receipt.
	CustomerEmail string `json:"customerEmail,omitempty" validate:"omitempty,email"`
}

type CheckoutResponse struct {
	State     string          `json:"state"`
	OrderId   int             `json:"orderId"`
	Reference string          `json:"reference"`
	TicketId  int             `json:"ticketId"`
	Seat      string          `json:"seat"`
	Total     decimal.Decimal `json:"total"`
}

type OrderItemResponse struct {
	SnackId   int             `json:"snackId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type OrderResponse struct {
	Id        int                 `json:"id"`
	Reference string              `json:"reference"`
	PlacedAt  time.Time           `json:"placedAt"`
	Total     decimal.Decimal     `json:"total"`
	Tickets   []int               `json:"tickets"`
	Items     []OrderItemResponse `json:"items"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}
