package catalog

import (
	"errors"
	"strings"
	"time"

	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/pkg/guard"
)

var ErrVegetableItemIsNotConstructed = errors.New("VegetableItem must be created via NewVegetableItem constructor")

// VegetableItem is a produce listing on the vegetables page.
type VegetableItem struct {
	id           kernel.UUID
	category     string
	name         string
	unit         string
	price        string
	availableQty string
	status       string
	notes        string
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewVegetableItem creates a vegetable listing. The category defaults to
// "Seasonal", the unit to "kg", and the status to "Available".
func NewVegetableItem(id kernel.UUID, category, name, unit, price, availableQty, status, notes string) (*VegetableItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(category) == "" {
		category = "Seasonal"
	}
	if strings.TrimSpace(unit) == "" {
		unit = "kg"
	}

	return &VegetableItem{
		id:           id,
		category:     category,
		name:         name,
		unit:         unit,
		price:        price,
		availableQty: availableQty,
		status:       NormalizeAvailability(status),
		notes:        notes,
		createdAt:    time.Now().UTC(),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreVegetableItem reconstructs a vegetable item from persistence.
func RestoreVegetableItem(id kernel.UUID, category, name, unit, price, availableQty, status, notes string, createdAt time.Time) (*VegetableItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &VegetableItem{
		id:           id,
		category:     category,
		name:         name,
		unit:         unit,
		price:        price,
		availableQty: availableQty,
		status:       status,
		notes:        notes,
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item came through a constructor.
func (v *VegetableItem) Validate() error {
	if v == nil {
		return ErrVegetableItemIsNotConstructed
	}
	return v.guard.Validate(ErrVegetableItemIsNotConstructed)
}

// ID returns the item identifier.
func (v *VegetableItem) ID() kernel.UUID { return v.id }

// Category returns the produce grouping ("Seasonal" by default).
func (v *VegetableItem) Category() string { return v.category }

// Name returns the vegetable name.
func (v *VegetableItem) Name() string { return v.name }

// Unit returns the selling unit ("kg" by default).
func (v *VegetableItem) Unit() string { return v.unit }

// Price returns the free-text price string.
func (v *VegetableItem) Price() string { return v.price }

// AvailableQty returns the entered stock quantity string.
func (v *VegetableItem) AvailableQty() string { return v.availableQty }

// Status returns the availability display string.
func (v *VegetableItem) Status() string { return v.status }

// Notes returns any staff notes.
func (v *VegetableItem) Notes() string { return v.notes }

// CreatedAt returns the listing creation time.
func (v *VegetableItem) CreatedAt() time.Time { return v.createdAt }
