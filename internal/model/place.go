package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Place represents a rentable listing owned by one user. Every listing field
// is optional at the storage layer; form-level validation belongs to the
// client.
type Place struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	OwnerID     uuid.UUID `json:"owner" gorm:"type:char(36);index;not null"`
	Title       string    `json:"title" gorm:"size:255"`
	Address     string    `json:"address" gorm:"size:512"`
	Description string    `json:"description" gorm:"type:text"`
	ExtraInfo   string    `json:"extraInfo" gorm:"type:text"`
	Perks       []string  `json:"perks" gorm:"serializer:json;type:text"`
	Photos      []string  `json:"photos" gorm:"serializer:json;type:longtext"`
	CheckIn     string    `json:"checkIn" gorm:"size:32"`
	CheckOut    string    `json:"checkOut" gorm:"size:32"`
	MaxGuests   int       `json:"maxGuests"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Place) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
