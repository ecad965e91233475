// Package sheeprepo persists sheep and mutton listings.
package sheeprepo

import (
	"time"

	"farmstore/internal/core/domain/model/catalog"
	"farmstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// SheepItemDTO is the database row for a sheep listing.
type SheepItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SaleType  string    `gorm:"index"`
	TagID     string
	WeightKg  string
	AgeMonths string
	Price     string
	Status    string
	Notes     string
	CreatedAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "sheep_items".
func (SheepItemDTO) TableName() string {
	return "sheep_items"
}

func fromDomain(item *catalog.SheepItem) SheepItemDTO {
	return SheepItemDTO{
		ID:        item.ID().Bytes(),
		SaleType:  item.SaleType(),
		TagID:     item.TagID(),
		WeightKg:  item.WeightKg(),
		AgeMonths: item.AgeMonths(),
		Price:     item.Price(),
		Status:    item.Status(),
		Notes:     item.Notes(),
		CreatedAt: item.CreatedAt(),
	}
}

func toDomain(dto SheepItemDTO) (*catalog.SheepItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreSheepItem(id, dto.SaleType, dto.TagID, dto.WeightKg,
		dto.AgeMonths, dto.Price, dto.Status, dto.Notes, dto.CreatedAt)
}
