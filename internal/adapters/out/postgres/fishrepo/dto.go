// Package fishrepo persists fish inventory listings.
package fishrepo

import (
	"time"

	"farmstore/internal/core/domain/model/catalog"
	"farmstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// FishItemDTO is the database row for a fish stock listing.
type FishItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type      string    `gorm:"index"`
	Name      string
	Detail    string
	Price     string
	Status    string
	CreatedAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "fish_items".
func (FishItemDTO) TableName() string {
	return "fish_items"
}

func fromDomain(item *catalog.FishItem) FishItemDTO {
	return FishItemDTO{
		ID:        item.ID().Bytes(),
		Type:      string(item.ItemType()),
		Name:      item.Name(),
		Detail:    item.Detail(),
		Price:     item.Price(),
		Status:    item.Status(),
		CreatedAt: item.CreatedAt(),
	}
}

func toDomain(dto FishItemDTO) (*catalog.FishItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreFishItem(id, catalog.FishItemType(dto.Type),
		dto.Name, dto.Detail, dto.Price, dto.Status, dto.CreatedAt)
}
