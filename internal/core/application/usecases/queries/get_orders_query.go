// Package queries contains read-side operations. Query handlers bypass the
// domain model and read projection rows straight from the database.
package queries

import (
	"errors"
	"time"

	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves every order for the admin panel, newest first.
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve all orders.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse is one admin-panel order row. Status carries the
// stored upper-case value ("NEW", "CONTACTED", ...).
type GetOrdersQueryResponse struct {
	ID        kernel.UUID
	Item      string
	BuyerType string
	Name      string
	Phone     string
	Qty       string
	Location  string
	Notes     string
	UnitPrice string
	Total     string
	Status    string
	CreatedAt time.Time
}
