package commands

import (
	"errors"

	"farmstore/internal/core/domain/model/catalog"
	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/pkg/guard"
)

var ErrAddFishVariantCommandIsNotConstructed = errors.New(
	"AddFishVariantCommand must be created via NewAddFishVariantCommand constructor",
)

// AddFishVariantCommand represents staff attaching a sellable service/size
// configuration to an existing fish type.
type AddFishVariantCommand struct { //nolint:recvcheck //using for validation
	variantID    kernel.UUID
	fishTypeID   kernel.UUID
	serviceType  catalog.ServiceType
	sizeLabel    string
	price        string
	notes        string
	prepTimeMins string
	isAvailable  bool

	guard guard.ConstructorGuard
}

// NewAddFishVariantCommand creates a command to attach a variant to a fish type.
func NewAddFishVariantCommand(variantID, fishTypeID kernel.UUID, serviceType catalog.ServiceType,
	sizeLabel, price, notes, prepTimeMins string, isAvailable bool) (AddFishVariantCommand, error) {
	if err := errors.Join(variantID.Validate(), fishTypeID.Validate(), serviceType.Validate()); err != nil {
		return AddFishVariantCommand{}, err
	}

	return AddFishVariantCommand{
		variantID:    variantID,
		fishTypeID:   fishTypeID,
		serviceType:  serviceType,
		sizeLabel:    sizeLabel,
		price:        price,
		notes:        notes,
		prepTimeMins: prepTimeMins,
		isAvailable:  isAvailable,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddFishVariantCommand) Validate() error {
	return c.guard.Validate(ErrAddFishVariantCommandIsNotConstructed)
}

// VariantID returns the identifier for the new variant.
func (c AddFishVariantCommand) VariantID() kernel.UUID { return c.variantID }

// FishTypeID returns the owning fish type's identifier.
func (c AddFishVariantCommand) FishTypeID() kernel.UUID { return c.fishTypeID }

// ServiceType returns the preparation classification.
func (c AddFishVariantCommand) ServiceType() catalog.ServiceType { return c.serviceType }

// SizeLabel returns the free-text size label.
func (c AddFishVariantCommand) SizeLabel() string { return c.sizeLabel }

// Price returns the free-text price string.
func (c AddFishVariantCommand) Price() string { return c.price }

// Notes returns the variant notes.
func (c AddFishVariantCommand) Notes() string { return c.notes }

// PrepTimeMins returns the preparation time display string.
func (c AddFishVariantCommand) PrepTimeMins() string { return c.prepTimeMins }

// IsAvailable reports whether the variant should be orderable immediately.
func (c AddFishVariantCommand) IsAvailable() bool { return c.isAvailable }
