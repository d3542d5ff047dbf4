package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Image holds inline-encoded images posted by the dev upload endpoint.
type Image struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Files     []string  `json:"myFile" gorm:"serializer:json;type:longtext"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
