package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking represents a reservation referencing a Place and the booking user.
// Overlapping bookings for the same place are accepted; there is no
// availability check.
type Booking struct {
	ID             uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	PlaceID        uuid.UUID `json:"placeId" gorm:"type:char(36);index;not null"`
	Place          *Place    `json:"place,omitempty" gorm:"foreignKey:PlaceID"`
	UserID         uuid.UUID `json:"user" gorm:"type:char(36);index;not null"`
	CheckIn        string    `json:"checkIn" gorm:"size:32"`
	CheckOut       string    `json:"checkOut" gorm:"size:32"`
	NumberOfGuests int       `json:"numberOfGuests"`
	Name           string    `json:"name" gorm:"size:255"`
	Phone          string    `json:"phone" gorm:"size:64"`
	Price          float64   `json:"price"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
