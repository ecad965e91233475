package queries

import (
	"context"

	"farmstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFishItemsQueryHandler reads fish inventory rows.
type GetFishItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetFishItemsQueryHandler creates a handler for fish listing queries.
func NewGetFishItemsQueryHandler(db *gorm.DB) GetFishItemsQueryHandler {
	return GetFishItemsQueryHandler{db: db}
}

// Handle returns fish listings, newest first, honoring the optional stock
// classification filter.
func (h GetFishItemsQueryHandler) Handle(ctx context.Context, query GetFishItemsQuery) ([]GetFishItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			type,
			name,
			detail,
			price,
			status,
			created_at
		FROM fish_items
	`
	args := make([]any, 0, 1)
	if query.Filtered() {
		sql += ` WHERE type = ?`
		args = append(args, string(query.ItemType()))
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetFishItemsQueryResponse, 0)
	for rows.Next() {
		var resp GetFishItemsQueryResponse
		var id uuid.UUID

		err = rows.Scan(&id, &resp.Type, &resp.Name, &resp.Detail, &resp.Price, &resp.Status, &resp.CreatedAt)
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
