package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"staybook/internal/model"
)

// BookingRepository defines booking persistence operations.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByUser(ctx context.Context, user uuid.UUID) ([]model.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

// FindByUser returns the user's bookings with the referenced Place expanded,
// so callers never see a bare identifier.
func (r *bookingRepository) FindByUser(ctx context.Context, user uuid.UUID) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).Preload("Place").Where("user_id = ?", user).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
