package fishrepo

import (
	"context"
	"errors"

	"farmstore/internal/core/domain/model/catalog"
	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFishItemRepository implements FishItemRepository using GORM.
type GormFishItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFishItemRepository creates a new GORM fish item repository.
func NewGormFishItemRepository(db *gorm.DB, tracker aggregateTracker) *GormFishItemRepository {
	return &GormFishItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new fish listing to the database.
func (r *GormFishItemRepository) Add(ctx context.Context, aggregate *catalog.FishItem) error {
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

// Get retrieves a fish listing by ID.
func (r *GormFishItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.FishItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FishItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("fish item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Remove deletes a fish listing by ID.
func (r *GormFishItemRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&FishItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("fish item", id.String())
	}

	return nil
}
