package queries

import (
	"context"
	"sort"

	"farmstore/internal/core/domain/model/catalog"
	"farmstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFamilyPacksQueryHandler assembles the storefront family-packs catalog.
type GetFamilyPacksQueryHandler struct {
	db *gorm.DB
}

// NewGetFamilyPacksQueryHandler creates a handler for the family-packs query.
func NewGetFamilyPacksQueryHandler(db *gorm.DB) GetFamilyPacksQueryHandler {
	return GetFamilyPacksQueryHandler{db: db}
}

// Handle returns active fish types with their available variants. Types are
// ordered by name; variants within a type follow the fixed service order
// (raw, cut, cooked, pickle) and then size label, so the storefront renders
// preparation tabs consistently regardless of insertion order.
func (h GetFamilyPacksQueryHandler) Handle(ctx context.Context, query GetFamilyPacksQuery) ([]GetFamilyPacksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	packs, index, err := h.readActiveTypes(ctx)
	if err != nil {
		return nil, err
	}
	if len(packs) == 0 {
		return packs, nil
	}

	if err = h.attachVariants(ctx, packs, index); err != nil {
		return nil, err
	}

	for i := range packs {
		sortVariants(packs[i].Variants)
	}

	return packs, nil
}

func (h GetFamilyPacksQueryHandler) readActiveTypes(ctx context.Context) ([]GetFamilyPacksQueryResponse, map[uuid.UUID]int, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			image_url
		FROM fish_types
		WHERE is_active
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	packs := make([]GetFamilyPacksQueryResponse, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var resp GetFamilyPacksQueryResponse
		var id uuid.UUID

		err = rows.Scan(&id, &resp.Name, &resp.Description, &resp.ImageURL)
		if err != nil {
			return nil, nil, err
		}

		typeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		resp.ID = typeID
		resp.Variants = make([]FamilyPackVariantResponse, 0)

		index[id] = len(packs)
		packs = append(packs, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return packs, index, nil
}

func (h GetFamilyPacksQueryHandler) attachVariants(ctx context.Context, packs []GetFamilyPacksQueryResponse, index map[uuid.UUID]int) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			v.id,
			v.fish_type_id,
			v.service_type,
			v.size_label,
			v.price,
			v.notes,
			v.prep_time_mins
		FROM fish_variants v
		JOIN fish_types t ON t.id = v.fish_type_id
		WHERE v.is_available AND t.is_active
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var variant FamilyPackVariantResponse
		var id, fishTypeID uuid.UUID

		err = rows.Scan(&id, &fishTypeID, &variant.ServiceType, &variant.SizeLabel,
			&variant.Price, &variant.Notes, &variant.PrepTimeMins)
		if err != nil {
			return err
		}

		variantID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return idErr
		}
		variant.ID = variantID
		variant.ServiceLabel = catalog.ServiceType(variant.ServiceType).Label()

		pos, ok := index[fishTypeID]
		if !ok {
			continue
		}
		packs[pos].Variants = append(packs[pos].Variants, variant)
	}

	return rows.Err()
}

func sortVariants(variants []FamilyPackVariantResponse) {
	sort.SliceStable(variants, func(i, j int) bool {
		pi := catalog.ServiceType(variants[i].ServiceType).Priority()
		pj := catalog.ServiceType(variants[j].ServiceType).Priority()
		if pi != pj {
			return pi < pj
		}
		return variants[i].SizeLabel < variants[j].SizeLabel
	})
}
