package queries

import (
	"context"

	"farmstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFishTypesQueryHandler reads fish type rows for the admin panel.
type GetFishTypesQueryHandler struct {
	db *gorm.DB
}

// NewGetFishTypesQueryHandler creates a handler for fish type queries.
func NewGetFishTypesQueryHandler(db *gorm.DB) GetFishTypesQueryHandler {
	return GetFishTypesQueryHandler{db: db}
}

// Handle returns all fish types ordered by name.
func (h GetFishTypesQueryHandler) Handle(ctx context.Context, query GetFishTypesQuery) ([]GetFishTypesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			image_url,
			is_active,
			created_at
		FROM fish_types
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]GetFishTypesQueryResponse, 0)
	for rows.Next() {
		var resp GetFishTypesQueryResponse
		var id uuid.UUID

		err = rows.Scan(&id, &resp.Name, &resp.Description, &resp.ImageURL, &resp.IsActive, &resp.CreatedAt)
		if err != nil {
			return nil, err
		}

		typeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = typeID
		types = append(types, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return types, nil
}
