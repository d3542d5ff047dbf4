package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "staybook/internal/errors"
	"staybook/internal/model"
	"staybook/internal/repository"
)

// PlaceFields carries the full set of listing fields. Every field is optional;
// absent values are persisted as zero values.
type PlaceFields struct {
	Title       string
	Address     string
	Photos      []string
	Description string
	Perks       []string
	ExtraInfo   string
	CheckIn     string
	CheckOut    string
	MaxGuests   int
	Price       float64
}

// PlaceService handles listing creation, owner-only mutation and retrieval.
type PlaceService interface {
	Create(ctx context.Context, owner uuid.UUID, fields PlaceFields) (*model.Place, error)
	// Update replaces every listing field. It fails with ErrNotOwner when the
	// caller is not the stored owner; the stored record is left untouched.
	Update(ctx context.Context, id, caller uuid.UUID, fields PlaceFields) (*model.Place, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Place, error)
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]model.Place, error)
	ListAll(ctx context.Context) ([]model.Place, error)
}

type placeService struct {
	places repository.PlaceRepository
}

// NewPlaceService creates a new place service.
func NewPlaceService(places repository.PlaceRepository) PlaceService {
	return &placeService{places: places}
}

func (s *placeService) Create(ctx context.Context, owner uuid.UUID, fields PlaceFields) (*model.Place, error) {
	place := &model.Place{OwnerID: owner}
	applyFields(place, fields)
	if err := s.places.Create(ctx, place); err != nil {
		return nil, fmt.Errorf("create place: %w", err)
	}
	return place, nil
}

func (s *placeService) Update(ctx context.Context, id, caller uuid.UUID, fields PlaceFields) (*model.Place, error) {
	place, err := s.places.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("find place: %w", err)
	}
	if place.OwnerID != caller {
		return nil, apperrors.ErrNotOwner
	}
	applyFields(place, fields)
	if err := s.places.Update(ctx, place); err != nil {
		return nil, fmt.Errorf("update place: %w", err)
	}
	return place, nil
}

func (s *placeService) Get(ctx context.Context, id uuid.UUID) (*model.Place, error) {
	place, err := s.places.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("find place: %w", err)
	}
	return place, nil
}

func (s *placeService) ListByOwner(ctx context.Context, owner uuid.UUID) ([]model.Place, error) {
	return s.places.FindByOwner(ctx, owner)
}

func (s *placeService) ListAll(ctx context.Context) ([]model.Place, error) {
	return s.places.FindAll(ctx)
}

// applyFields is a full-field replace, not a partial patch.
func applyFields(place *model.Place, fields PlaceFields) {
	place.Title = fields.Title
	place.Address = fields.Address
	place.Photos = fields.Photos
	place.Description = fields.Description
	place.Perks = fields.Perks
	place.ExtraInfo = fields.ExtraInfo
	place.CheckIn = fields.CheckIn
	place.CheckOut = fields.CheckOut
	place.MaxGuests = fields.MaxGuests
	place.Price = fields.Price
}
