// Package packrepo persists family-pack fish types and their variants.
package packrepo

import (
	"time"

	"farmstore/internal/core/domain/model/catalog"
	"farmstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// FishTypeDTO is the database row for a family-pack species.
type FishTypeDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"index"`
	Description string
	ImageURL    string
	IsActive    bool `gorm:"index"`
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming to use "fish_types".
func (FishTypeDTO) TableName() string {
	return "fish_types"
}

// FishVariantDTO is the database row for a sellable configuration of a
// fish type. ServiceType holds the upper-case wire value ("RAW", "CUT", ...).
type FishVariantDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FishTypeID   uuid.UUID `gorm:"type:uuid;index"`
	ServiceType  string
	SizeLabel    string
	Price        string
	Notes        string
	PrepTimeMins string
	IsAvailable  bool `gorm:"index"`
}

// TableName overrides GORM's default naming to use "fish_variants".
func (FishVariantDTO) TableName() string {
	return "fish_variants"
}

func typeFromDomain(fishType *catalog.FishType) FishTypeDTO {
	return FishTypeDTO{
		ID:          fishType.ID().Bytes(),
		Name:        fishType.Name(),
		Description: fishType.Description(),
		ImageURL:    fishType.ImageURL(),
		IsActive:    fishType.IsActive(),
		CreatedAt:   fishType.CreatedAt(),
	}
}

func typeToDomain(dto FishTypeDTO) (*catalog.FishType, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreFishType(id, dto.Name, dto.Description,
		dto.ImageURL, dto.IsActive, dto.CreatedAt)
}

func variantFromDomain(variant *catalog.FishVariant) FishVariantDTO {
	return FishVariantDTO{
		ID:           variant.ID().Bytes(),
		FishTypeID:   variant.FishTypeID().Bytes(),
		ServiceType:  string(variant.ServiceType()),
		SizeLabel:    variant.SizeLabel(),
		Price:        variant.Price(),
		Notes:        variant.Notes(),
		PrepTimeMins: variant.PrepTimeMins(),
		IsAvailable:  variant.IsAvailable(),
	}
}
