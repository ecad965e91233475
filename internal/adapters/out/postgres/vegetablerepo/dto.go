// Package vegetablerepo persists vegetable produce listings.
package vegetablerepo

import (
	"time"

	"farmstore/internal/core/domain/model/catalog"
	"farmstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// VegetableItemDTO is the database row for a vegetable listing.
type VegetableItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Category     string    `gorm:"index"`
	Name         string
	Unit         string
	Price        string
	AvailableQty string
	Status       string
	Notes        string
	CreatedAt    time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "vegetable_items".
func (VegetableItemDTO) TableName() string {
	return "vegetable_items"
}

func fromDomain(item *catalog.VegetableItem) VegetableItemDTO {
	return VegetableItemDTO{
		ID:           item.ID().Bytes(),
		Category:     item.Category(),
		Name:         item.Name(),
		Unit:         item.Unit(),
		Price:        item.Price(),
		AvailableQty: item.AvailableQty(),
		Status:       item.Status(),
		Notes:        item.Notes(),
		CreatedAt:    item.CreatedAt(),
	}
}

func toDomain(dto VegetableItemDTO) (*catalog.VegetableItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreVegetableItem(id, dto.Category, dto.Name, dto.Unit,
		dto.Price, dto.AvailableQty, dto.Status, dto.Notes, dto.CreatedAt)
}
