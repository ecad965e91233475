package queries

import (
	"errors"
	"time"

	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/pkg/guard"
)

var ErrGetVegetableItemsQueryIsNotConstructed = errors.New(
	"GetVegetableItemsQuery must be created via NewGetVegetableItemsQuery constructor",
)

// GetVegetableItemsQuery retrieves all vegetable listings for the produce page.
type GetVegetableItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetVegetableItemsQuery creates a query for all vegetable listings.
func NewGetVegetableItemsQuery() GetVegetableItemsQuery {
	return GetVegetableItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetVegetableItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetVegetableItemsQueryIsNotConstructed)
}

// GetVegetableItemsQueryResponse is one vegetable listing row.
type GetVegetableItemsQueryResponse struct {
	ID           kernel.UUID
	Category     string
	Name         string
	Unit         string
	Price        string
	AvailableQty string
	Status       string
	Notes        string
	CreatedAt    time.Time
}
