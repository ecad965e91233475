package commands

import (
	"errors"

	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/pkg/guard"
)

var ErrAddVegetableItemCommandIsNotConstructed = errors.New(
	"AddVegetableItemCommand must be created via NewAddVegetableItemCommand constructor",
)

// AddVegetableItemCommand represents staff adding a produce listing to the
// vegetables page.
type AddVegetableItemCommand struct { //nolint:recvcheck //using for validation
	itemID       kernel.UUID
	category     string
	name         string
	unit         string
	price        string
	availableQty string
	status       string
	notes        string

	guard guard.ConstructorGuard
}

// NewAddVegetableItemCommand creates a command to add a vegetable listing.
func NewAddVegetableItemCommand(itemID kernel.UUID, category, name, unit, price, availableQty, status, notes string) (AddVegetableItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return AddVegetableItemCommand{}, err
	}

	return AddVegetableItemCommand{
		itemID:       itemID,
		category:     category,
		name:         name,
		unit:         unit,
		price:        price,
		availableQty: availableQty,
		status:       status,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddVegetableItemCommand) Validate() error {
	return c.guard.Validate(ErrAddVegetableItemCommandIsNotConstructed)
}

// ItemID returns the identifier for the new listing.
func (c AddVegetableItemCommand) ItemID() kernel.UUID { return c.itemID }

// Category returns the produce grouping.
func (c AddVegetableItemCommand) Category() string { return c.category }

// Name returns the vegetable name.
func (c AddVegetableItemCommand) Name() string { return c.name }

// Unit returns the selling unit.
func (c AddVegetableItemCommand) Unit() string { return c.unit }

// Price returns the free-text price string.
func (c AddVegetableItemCommand) Price() string { return c.price }

// AvailableQty returns the entered stock quantity string.
func (c AddVegetableItemCommand) AvailableQty() string { return c.availableQty }

// Status returns the availability display string.
func (c AddVegetableItemCommand) Status() string { return c.status }

// Notes returns any staff notes.
func (c AddVegetableItemCommand) Notes() string { return c.notes }
