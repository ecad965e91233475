package queries

import (
	"context"

	"farmstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSheepItemsQueryHandler reads sheep listing rows.
type GetSheepItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetSheepItemsQueryHandler creates a handler for sheep listing queries.
func NewGetSheepItemsQueryHandler(db *gorm.DB) GetSheepItemsQueryHandler {
	return GetSheepItemsQueryHandler{db: db}
}

// Handle returns all sheep listings, newest first.
func (h GetSheepItemsQueryHandler) Handle(ctx context.Context, query GetSheepItemsQuery) ([]GetSheepItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sale_type,
			tag_id,
			weight_kg,
			age_months,
			price,
			status,
			notes,
			created_at
		FROM sheep_items
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetSheepItemsQueryResponse, 0)
	for rows.Next() {
		var resp GetSheepItemsQueryResponse
		var id uuid.UUID

		err = rows.Scan(&id, &resp.SaleType, &resp.TagID, &resp.WeightKg,
			&resp.AgeMonths, &resp.Price, &resp.Status, &resp.Notes, &resp.CreatedAt)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = itemID
		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
