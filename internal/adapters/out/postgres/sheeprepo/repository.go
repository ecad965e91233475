package sheeprepo

import (
	"context"
	"errors"

	"farmstore/internal/core/domain/model/catalog"
	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSheepItemRepository implements SheepItemRepository using GORM.
type GormSheepItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSheepItemRepository creates a new GORM sheep item repository.
func NewGormSheepItemRepository(db *gorm.DB, tracker aggregateTracker) *GormSheepItemRepository {
	return &GormSheepItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new sheep listing to the database.
func (r *GormSheepItemRepository) Add(ctx context.Context, aggregate *catalog.SheepItem) error {
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

// Get retrieves a sheep listing by ID.
func (r *GormSheepItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.SheepItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SheepItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sheep item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Remove deletes a sheep listing by ID.
func (r *GormSheepItemRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&SheepItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("sheep item", id.String())
	}

	return nil
}
