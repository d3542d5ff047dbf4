package repository

import (
	"context"

	"gorm.io/gorm"

	"staybook/internal/model"
)

// ImageRepository defines persistence for dev-uploaded inline images.
type ImageRepository interface {
	Create(ctx context.Context, image *model.Image) error
}

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository creates a new image repository.
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, image *model.Image) error {
	return r.db.WithContext(ctx).Create(image).Error
}
