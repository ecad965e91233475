package commands

import (
	"errors"

	"farmstore/internal/core/domain/model/catalog"
	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/pkg/guard"
)

var ErrRemoveInventoryItemCommandIsNotConstructed = errors.New(
	"RemoveInventoryItemCommand must be created via NewRemoveInventoryItemCommand constructor",
)

// RemoveInventoryItemCommand represents staff deleting a listing from one
// of the inventory pages. Orders are never deleted; removal exists for
// inventory only.
type RemoveInventoryItemCommand struct { //nolint:recvcheck //using for validation
	category catalog.Category
	itemID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveInventoryItemCommand creates a command to delete an inventory
// listing from the given category.
func NewRemoveInventoryItemCommand(category catalog.Category, itemID kernel.UUID) (RemoveInventoryItemCommand, error) {
	if _, err := catalog.ParseCategory(string(category)); err != nil {
		return RemoveInventoryItemCommand{}, err
	}
	if err := itemID.Validate(); err != nil {
		return RemoveInventoryItemCommand{}, err
	}

	return RemoveInventoryItemCommand{
		category: category,
		itemID:   itemID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveInventoryItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveInventoryItemCommandIsNotConstructed)
}

// Category returns the inventory section the item belongs to.
func (c RemoveInventoryItemCommand) Category() catalog.Category { return c.category }

// ItemID returns the identifier of the listing to delete.
func (c RemoveInventoryItemCommand) ItemID() kernel.UUID { return c.itemID }
