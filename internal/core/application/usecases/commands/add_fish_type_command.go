package commands

import (
	"errors"

	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/pkg/guard"
)

var ErrAddFishTypeCommandIsNotConstructed = errors.New(
	"AddFishTypeCommand must be created via NewAddFishTypeCommand constructor",
)

// AddFishTypeCommand represents staff registering a new species for the
// family-packs page.
type AddFishTypeCommand struct { //nolint:recvcheck //using for validation
	fishTypeID  kernel.UUID
	name        string
	description string
	imageURL    string
	isActive    bool

	guard guard.ConstructorGuard
}

// NewAddFishTypeCommand creates a command to register a fish type.
func NewAddFishTypeCommand(fishTypeID kernel.UUID, name, description, imageURL string, isActive bool) (AddFishTypeCommand, error) {
	if err := fishTypeID.Validate(); err != nil {
		return AddFishTypeCommand{}, err
	}

	return AddFishTypeCommand{
		fishTypeID:  fishTypeID,
		name:        name,
		description: description,
		imageURL:    imageURL,
		isActive:    isActive,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddFishTypeCommand) Validate() error {
	return c.guard.Validate(ErrAddFishTypeCommandIsNotConstructed)
}

// FishTypeID returns the identifier for the new fish type.
func (c AddFishTypeCommand) FishTypeID() kernel.UUID { return c.fishTypeID }

// Name returns the species name.
func (c AddFishTypeCommand) Name() string { return c.name }

// Description returns the customer-facing description.
func (c AddFishTypeCommand) Description() string { return c.description }

// ImageURL returns the listing image location.
func (c AddFishTypeCommand) ImageURL() string { return c.imageURL }

// IsActive reports whether the type should be visible immediately.
func (c AddFishTypeCommand) IsActive() bool { return c.isActive }
