package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"staybook/internal/service"
)

// BookingHandler handles reservation endpoints.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// BookingRequest represents a reservation request.
type BookingRequest struct {
	Place          string  `json:"place"`
	CheckIn        string  `json:"checkIn"`
	CheckOut       string  `json:"checkOut"`
	NumberOfGuests int     `json:"numberOfGuests"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Price          float64 `json:"price"`
}

// Create godoc
// @Summary Book a place
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body BookingRequest true "Reservation fields"
// @Success 200 {object} model.Booking
// @Router /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	user, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusOK, "null")
	}

	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"err": err.Error()})
	}
	placeID, err := uuid.Parse(req.Place)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"err": err.Error()})
	}

	booking, err := h.bookingService.Create(c.Request().Context(), user, service.BookingFields{
		Place:          placeID,
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		NumberOfGuests: req.NumberOfGuests,
		Name:           req.Name,
		Phone:          req.Phone,
		Price:          req.Price,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"err": err.Error()})
	}
	return c.JSON(http.StatusOK, booking)
}

// List godoc
// @Summary List the caller's bookings with each place expanded
// @Tags bookings
// @Produce json
// @Success 200 {array} model.Booking
// @Router /bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	user, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusOK, "null")
	}
	bookings, err := h.bookingService.ListForUser(c.Request().Context(), user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"err": err.Error()})
	}
	return c.JSON(http.StatusOK, bookings)
}
