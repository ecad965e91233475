package queries

import (
	"context"

	"farmstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVegetableItemsQueryHandler reads vegetable listing rows.
type GetVegetableItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetVegetableItemsQueryHandler creates a handler for vegetable listing queries.
func NewGetVegetableItemsQueryHandler(db *gorm.DB) GetVegetableItemsQueryHandler {
	return GetVegetableItemsQueryHandler{db: db}
}

// Handle returns all vegetable listings, newest first.
func (h GetVegetableItemsQueryHandler) Handle(ctx context.Context, query GetVegetableItemsQuery) ([]GetVegetableItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			category,
			name,
			unit,
			price,
			available_qty,
			status,
			notes,
			created_at
		FROM vegetable_items
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetVegetableItemsQueryResponse, 0)
	for rows.Next() {
		var resp GetVegetableItemsQueryResponse
		var id uuid.UUID

		err = rows.Scan(&id, &resp.Category, &resp.Name, &resp.Unit, &resp.Price,
			&resp.AvailableQty, &resp.Status, &resp.Notes, &resp.CreatedAt)
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
