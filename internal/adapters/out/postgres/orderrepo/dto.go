// Package orderrepo persists order aggregates. It maps between the domain
// model and the orders table, keeping every customer-entered field as the
// text it was submitted with.
package orderrepo

import (
	"time"

	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for an order. Status is stored as the
// upper-case string the admin panel shows ("NEW", "CONTACTED", ...).
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Item      string
	BuyerType string
	Name      string
	Phone     string
	Qty       string
	Location  string
	Notes     string
	UnitPrice string
	Total     string
	Status    string    `gorm:"index"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:        aggregate.ID().Bytes(),
		Item:      aggregate.Item(),
		BuyerType: aggregate.BuyerType(),
		Name:      aggregate.Name(),
		Phone:     aggregate.Phone(),
		Qty:       aggregate.Qty(),
		Location:  aggregate.Location(),
		Notes:     aggregate.Notes(),
		UnitPrice: aggregate.UnitPrice(),
		Total:     aggregate.Total(),
		Status:    string(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.Item, dto.BuyerType, dto.Name, dto.Phone,
		dto.Qty, dto.Location, dto.Notes, dto.UnitPrice, dto.Total,
		order.Status(dto.Status), dto.CreatedAt)
}
