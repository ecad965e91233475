package commands

import (
	"errors"

	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/pkg/guard"
)

var ErrAddSheepItemCommandIsNotConstructed = errors.New(
	"AddSheepItemCommand must be created via NewAddSheepItemCommand constructor",
)

// AddSheepItemCommand represents staff adding a live-sheep or mutton
// listing. All payload fields are optional free text; defaults are applied
// by the aggregate.
type AddSheepItemCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	saleType  string
	tagID     string
	weightKg  string
	ageMonths string
	price     string
	status    string
	notes     string

	guard guard.ConstructorGuard
}

// NewAddSheepItemCommand creates a command to add a sheep listing.
func NewAddSheepItemCommand(itemID kernel.UUID, saleType, tagID, weightKg, ageMonths, price, status, notes string) (AddSheepItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return AddSheepItemCommand{}, err
	}

	return AddSheepItemCommand{
		itemID:    itemID,
		saleType:  saleType,
		tagID:     tagID,
		weightKg:  weightKg,
		ageMonths: ageMonths,
		price:     price,
		status:    status,
		notes:     notes,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddSheepItemCommand) Validate() error {
	return c.guard.Validate(ErrAddSheepItemCommandIsNotConstructed)
}

// ItemID returns the identifier for the new listing.
func (c AddSheepItemCommand) ItemID() kernel.UUID { return c.itemID }

// SaleType returns "live" or "mutton" (blank defaults to live).
func (c AddSheepItemCommand) SaleType() string { return c.saleType }

// TagID returns the ear-tag identifier.
func (c AddSheepItemCommand) TagID() string { return c.tagID }

// WeightKg returns the entered weight string.
func (c AddSheepItemCommand) WeightKg() string { return c.weightKg }

// AgeMonths returns the entered age string.
func (c AddSheepItemCommand) AgeMonths() string { return c.ageMonths }

// Price returns the free-text price string.
func (c AddSheepItemCommand) Price() string { return c.price }

// Status returns the availability display string.
func (c AddSheepItemCommand) Status() string { return c.status }

// Notes returns any staff notes.
func (c AddSheepItemCommand) Notes() string { return c.notes }
