package queries

import (
	"errors"

	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/pkg/guard"
)

var ErrGetFamilyPacksQueryIsNotConstructed = errors.New(
	"GetFamilyPacksQuery must be created via NewGetFamilyPacksQuery constructor",
)

// GetFamilyPacksQuery retrieves the storefront family-packs catalog: active
// fish types with their orderable variants.
type GetFamilyPacksQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFamilyPacksQuery creates a query for the family-packs catalog.
func NewGetFamilyPacksQuery() GetFamilyPacksQuery {
	return GetFamilyPacksQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetFamilyPacksQuery) Validate() error {
	return q.guard.Validate(ErrGetFamilyPacksQueryIsNotConstructed)
}

// FamilyPackVariantResponse is one orderable configuration of a fish type.
type FamilyPackVariantResponse struct {
	ID           kernel.UUID
	ServiceType  string
	ServiceLabel string
	SizeLabel    string
	Price        string
	Notes        string
	PrepTimeMins string
}

// GetFamilyPacksQueryResponse is one storefront fish type with its variants
// ordered by service priority, then size label.
type GetFamilyPacksQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	ImageURL    string
	Variants    []FamilyPackVariantResponse
}
