package commands

import (
	"errors"
	"strings"

	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/core/domain/model/order"
	"farmstore/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's order submission. All payload
// fields are strings carried verbatim from the order form; any status the
// caller supplied has already been discarded by the time this command exists.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	item      string
	buyerType string
	name      string
	phone     string
	qty       string
	location  string
	notes     string
	unitPrice string
	total     string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to persist a submitted order.
// Phone, qty, and location are required; the rest may be blank.
func NewCreateOrderCommand(orderID kernel.UUID, item, buyerType, name, phone, qty, location, notes, unitPrice, total string) (CreateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if strings.TrimSpace(phone) == "" {
		return CreateOrderCommand{}, order.ErrPhoneIsRequired
	}
	if strings.TrimSpace(qty) == "" {
		return CreateOrderCommand{}, order.ErrQtyIsRequired
	}
	if strings.TrimSpace(location) == "" {
		return CreateOrderCommand{}, order.ErrLocationIsRequired
	}

	return CreateOrderCommand{
		orderID:   orderID,
		item:      item,
		buyerType: buyerType,
		name:      name,
		phone:     phone,
		qty:       qty,
		location:  location,
		notes:     notes,
		unitPrice: unitPrice,
		total:     total,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Item returns the human-readable item label.
func (c CreateOrderCommand) Item() string { return c.item }

// BuyerType returns the buyer classification text.
func (c CreateOrderCommand) BuyerType() string { return c.buyerType }

// Name returns the buyer's name.
func (c CreateOrderCommand) Name() string { return c.name }

// Phone returns the buyer's phone number.
func (c CreateOrderCommand) Phone() string { return c.phone }

// Qty returns the quantity string as entered.
func (c CreateOrderCommand) Qty() string { return c.qty }

// Location returns the delivery location text.
func (c CreateOrderCommand) Location() string { return c.location }

// Notes returns the free-text notes.
func (c CreateOrderCommand) Notes() string { return c.notes }

// UnitPrice returns the unit price display string.
func (c CreateOrderCommand) UnitPrice() string { return c.unitPrice }

// Total returns the pre-formatted total display string.
func (c CreateOrderCommand) Total() string { return c.total }
