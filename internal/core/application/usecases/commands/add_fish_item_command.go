package commands

import (
	"errors"
	"strings"

	"farmstore/internal/core/domain/model/catalog"
	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/pkg/guard"
)

var ErrAddFishItemCommandIsNotConstructed = errors.New(
	"AddFishItemCommand must be created via NewAddFishItemCommand constructor",
)

// AddFishItemCommand represents staff adding a stock listing to the fish
// inventory page.
type AddFishItemCommand struct { //nolint:recvcheck //using for validation
	itemID   kernel.UUID
	itemType catalog.FishItemType
	name     string
	detail   string
	price    string
	status   string

	guard guard.ConstructorGuard
}

// NewAddFishItemCommand creates a command to add a fish listing. Name is
// required; type and status defaults are applied by the aggregate.
func NewAddFishItemCommand(itemID kernel.UUID, itemType catalog.FishItemType, name, detail, price, status string) (AddFishItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return AddFishItemCommand{}, err
	}
	if strings.TrimSpace(name) == "" {
		return AddFishItemCommand{}, catalog.ErrFishItemNameIsRequired
	}

	return AddFishItemCommand{
		itemID:   itemID,
		itemType: itemType,
		name:     name,
		detail:   detail,
		price:    price,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddFishItemCommand) Validate() error {
	return c.guard.Validate(ErrAddFishItemCommandIsNotConstructed)
}

// ItemID returns the identifier for the new listing.
func (c AddFishItemCommand) ItemID() kernel.UUID { return c.itemID }

// ItemType returns the stock classification.
func (c AddFishItemCommand) ItemType() catalog.FishItemType { return c.itemType }

// Name returns the listing name.
func (c AddFishItemCommand) Name() string { return c.name }

// Detail returns the free-text detail line.
func (c AddFishItemCommand) Detail() string { return c.detail }

// Price returns the free-text price string.
func (c AddFishItemCommand) Price() string { return c.price }

// Status returns the availability display string.
func (c AddFishItemCommand) Status() string { return c.status }
