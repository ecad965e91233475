package queries

import (
	"context"

	"farmstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads order rows for the admin panel.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for the order list query.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns every order, newest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			item,
			buyer_type,
			name,
			phone,
			qty,
			location,
			notes,
			unit_price,
			total,
			status,
			created_at
		FROM orders
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Item,
			&resp.BuyerType,
			&resp.Name,
			&resp.Phone,
			&resp.Qty,
			&resp.Location,
			&resp.Notes,
			&resp.UnitPrice,
			&resp.Total,
			&resp.Status,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
