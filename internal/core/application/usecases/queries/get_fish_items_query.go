package queries

import (
	"errors"
	"time"

	"farmstore/internal/core/domain/model/catalog"
	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/pkg/guard"
)

var ErrGetFishItemsQueryIsNotConstructed = errors.New(
	"GetFishItemsQuery must be created via NewGetFishItemsQuery constructor",
)

// GetFishItemsQuery retrieves fish stock listings, optionally narrowed to a
// single stock classification (seed, bulk, fresh).
type GetFishItemsQuery struct {
	itemType catalog.FishItemType
	filtered bool

	guard guard.ConstructorGuard
}

// NewGetFishItemsQuery creates a query for all fish listings.
func NewGetFishItemsQuery() GetFishItemsQuery {
	return GetFishItemsQuery{guard: guard.NewConstructorGuard()}
}

// NewGetFishItemsQueryWithType creates a query narrowed to one stock
// classification.
func NewGetFishItemsQueryWithType(itemType catalog.FishItemType) (GetFishItemsQuery, error) {
	if _, err := catalog.ParseFishItemType(string(itemType)); err != nil {
		return GetFishItemsQuery{}, err
	}

	return GetFishItemsQuery{
		itemType: itemType,
		filtered: true,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetFishItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetFishItemsQueryIsNotConstructed)
}

// ItemType returns the stock classification filter.
func (q GetFishItemsQuery) ItemType() catalog.FishItemType { return q.itemType }

// Filtered reports whether a classification filter applies.
func (q GetFishItemsQuery) Filtered() bool { return q.filtered }

// GetFishItemsQueryResponse is one fish inventory row.
type GetFishItemsQueryResponse struct {
	ID        kernel.UUID
	Type      string
	Name      string
	Detail    string
	Price     string
	Status    string
	CreatedAt time.Time
}
