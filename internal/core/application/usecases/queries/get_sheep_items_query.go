package queries

import (
	"errors"
	"time"

	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/pkg/guard"
)

var ErrGetSheepItemsQueryIsNotConstructed = errors.New(
	"GetSheepItemsQuery must be created via NewGetSheepItemsQuery constructor",
)

// GetSheepItemsQuery retrieves all sheep listings for the sheep page.
type GetSheepItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSheepItemsQuery creates a query for all sheep listings.
func NewGetSheepItemsQuery() GetSheepItemsQuery {
	return GetSheepItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSheepItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetSheepItemsQueryIsNotConstructed)
}

// GetSheepItemsQueryResponse is one sheep listing row.
type GetSheepItemsQueryResponse struct {
	ID        kernel.UUID
	SaleType  string
	TagID     string
	WeightKg  string
	AgeMonths string
	Price     string
	Status    string
	Notes     string
	CreatedAt time.Time
}
