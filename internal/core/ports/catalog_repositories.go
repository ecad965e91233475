package ports

import (
	"context"

	"farmstore/internal/core/domain/model/catalog"
	"farmstore/internal/core/domain/model/kernel"
)

// FishItemRepository defines persistence for fish stock listings.
type FishItemRepository interface {
	Add(ctx context.Context, aggregate *catalog.FishItem) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.FishItem, error)
	Remove(ctx context.Context, id kernel.UUID) error
}

// SheepItemRepository defines persistence for sheep listings.
type SheepItemRepository interface {
	Add(ctx context.Context, aggregate *catalog.SheepItem) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.SheepItem, error)
	Remove(ctx context.Context, id kernel.UUID) error
}

// VegetableItemRepository defines persistence for vegetable listings.
type VegetableItemRepository interface {
	Add(ctx context.Context, aggregate *catalog.VegetableItem) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.VegetableItem, error)
	Remove(ctx context.Context, id kernel.UUID) error
}

// FishTypeRepository defines persistence for family-pack fish types and
// their variants. Variants always belong to an existing fish type.
type FishTypeRepository interface {
	Add(ctx context.Context, aggregate *catalog.FishType) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.FishType, error)
	AddVariant(ctx context.Context, variant *catalog.FishVariant) error
}
