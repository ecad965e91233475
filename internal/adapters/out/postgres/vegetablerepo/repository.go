package vegetablerepo

import (
	"context"
	"errors"

	"farmstore/internal/core/domain/model/catalog"
	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVegetableItemRepository implements VegetableItemRepository using GORM.
type GormVegetableItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVegetableItemRepository creates a new GORM vegetable item repository.
func NewGormVegetableItemRepository(db *gorm.DB, tracker aggregateTracker) *GormVegetableItemRepository {
	return &GormVegetableItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vegetable listing to the database.
func (r *GormVegetableItemRepository) Add(ctx context.Context, aggregate *catalog.VegetableItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a vegetable listing by ID.
func (r *GormVegetableItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.VegetableItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VegetableItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vegetable item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Remove deletes a vegetable listing by ID.
func (r *GormVegetableItemRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&VegetableItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vegetable item", id.String())
	}

	return nil
}
