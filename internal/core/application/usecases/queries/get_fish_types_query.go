package queries

import (
	"errors"
	"time"

	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/pkg/guard"
)

var ErrGetFishTypesQueryIsNotConstructed = errors.New(
	"GetFishTypesQuery must be created via NewGetFishTypesQuery constructor",
)

// GetFishTypesQuery retrieves every fish type for the admin panel,
// including inactive ones.
type GetFishTypesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFishTypesQuery creates a query for all fish types.
func NewGetFishTypesQuery() GetFishTypesQuery {
	return GetFishTypesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetFishTypesQuery) Validate() error {
	return q.guard.Validate(ErrGetFishTypesQueryIsNotConstructed)
}

// GetFishTypesQueryResponse is one fish type row.
type GetFishTypesQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	ImageURL    string
	IsActive    bool
	CreatedAt   time.Time
}
