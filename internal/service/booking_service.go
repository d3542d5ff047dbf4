package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"staybook/internal/model"
	"staybook/internal/repository"
)

// BookingFields carries the reservation fields submitted by the client.
type BookingFields struct {
	Place          uuid.UUID
	CheckIn        string
	CheckOut       string
	NumberOfGuests int
	Name           string
	Phone          string
	Price          float64
}

// BookingService handles reservation creation and per-user retrieval. There is
// no availability check: overlapping bookings for the same place and dates are
// all accepted.
type BookingService interface {
	Create(ctx context.Context, user uuid.UUID, fields BookingFields) (*model.Booking, error)
	ListForUser(ctx context.Context, user uuid.UUID) ([]model.Booking, error)
}

type bookingService struct {
	bookings repository.BookingRepository
}

// NewBookingService creates a new booking service.
func NewBookingService(bookings repository.BookingRepository) BookingService {
	return &bookingService{bookings: bookings}
}

func (s *bookingService) Create(ctx context.Context, user uuid.UUID, fields BookingFields) (*model.Booking, error) {
	booking := &model.Booking{
		PlaceID:        fields.Place,
		UserID:         user,
		CheckIn:        fields.CheckIn,
		CheckOut:       fields.CheckOut,
		NumberOfGuests: fields.NumberOfGuests,
		Name:           fields.Name,
		Phone:          fields.Phone,
		Price:          fields.Price,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return booking, nil
}

// ListForUser returns the caller's bookings with the referenced Place expanded.
func (s *bookingService) ListForUser(ctx context.Context, user uuid.UUID) ([]model.Booking, error) {
	return s.bookings.FindByUser(ctx, user)
}
