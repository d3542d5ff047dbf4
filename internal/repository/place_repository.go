package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"staybook/internal/model"
)

// PlaceRepository defines place persistence operations. Updates are plain
// saves; concurrent writes resolve as last-write-wins.
type PlaceRepository interface {
	Create(ctx context.Context, place *model.Place) error
	Update(ctx context.Context, place *model.Place) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Place, error)
	FindByOwner(ctx context.Context, owner uuid.UUID) ([]model.Place, error)
	FindAll(ctx context.Context) ([]model.Place, error)
}

type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository creates a new place repository.
func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) Create(ctx context.Context, place *model.Place) error {
	return r.db.WithContext(ctx).Create(place).Error
}

func (r *placeRepository) Update(ctx context.Context, place *model.Place) error {
	return r.db.WithContext(ctx).Save(place).Error
}

func (r *placeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Place, error) {
	var place model.Place
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&place).Error; err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) FindByOwner(ctx context.Context, owner uuid.UUID) ([]model.Place, error) {
	var places []model.Place
	if err := r.db.WithContext(ctx).Where("owner_id = ?", owner).Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) FindAll(ctx context.Context) ([]model.Place, error) {
	var places []model.Place
	if err := r.db.WithContext(ctx).Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}
