package service

import (
	"context"
	"fmt"

	"staybook/internal/model"
	"staybook/internal/repository"
)

// ImageService persists inline-encoded images posted by the dev upload
// endpoint.
type ImageService interface {
	StoreInline(ctx context.Context, files []string) (*model.Image, error)
}

type imageService struct {
	images repository.ImageRepository
}

// NewImageService creates a new image service.
func NewImageService(images repository.ImageRepository) ImageService {
	return &imageService{images: images}
}

func (s *imageService) StoreInline(ctx context.Context, files []string) (*model.Image, error) {
	image := &model.Image{Files: files}
	if err := s.images.Create(ctx, image); err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}
	return image, nil
}
