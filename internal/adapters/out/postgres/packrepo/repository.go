package packrepo

import (
	"context"
	"errors"

	"farmstore/internal/core/domain/model/catalog"
	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFishTypeRepository implements FishTypeRepository using GORM.
type GormFishTypeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFishTypeRepository creates a new GORM fish type repository.
func NewGormFishTypeRepository(db *gorm.DB, tracker aggregateTracker) *GormFishTypeRepository {
	return &GormFishTypeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new fish type to the database.
func (r *GormFishTypeRepository) Add(ctx context.Context, aggregate *catalog.FishType) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := typeFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a fish type by ID.
func (r *GormFishTypeRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.FishType, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FishTypeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("fish type", id.String())
		}
		return nil, err
	}

	return typeToDomain(dto)
}

// AddVariant saves a new variant for an existing fish type.
func (r *GormFishTypeRepository) AddVariant(ctx context.Context, variant *catalog.FishVariant) error {
	if err := variant.Validate(); err != nil {
		return err
	}

	dto := variantFromDomain(variant)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(variant.ID(), variant)
	return nil
}
