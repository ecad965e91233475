package order

import (
	"errors"
	"strings"
	"time"

	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/pkg/guard"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	ErrPhoneIsRequired       = errors.New("phone is required")
	ErrQtyIsRequired         = errors.New("qty is required")
	ErrLocationIsRequired    = errors.New("location is required")
)

// Order is the persisted purchase request. Every field except status and
// createdAt is carried verbatim from the customer's draft: item, quantity,
// unit price, and total are strings exactly as displayed on the order page.
// The order is the canonical record — the catalog link parameters that
// seeded the draft are not.
//
// Invariants:
//   - Phone, qty, and location are present (submission is blocked without them)
//   - Status on creation is always NEW; any caller-supplied status is ignored
//   - Status afterwards is whatever the administrator last wrote
//   - Orders are never deleted
type Order struct {
	id        kernel.UUID
	item      string
	buyerType string
	name      string
	phone     string
	qty       string
	location  string
	notes     string
	unitPrice string
	total     string
	status    Status
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order from a submitted draft. Phone, qty, and
// location are required; everything else may be blank. The status is fixed
// to NEW regardless of what the creation request carried.
func NewOrder(id kernel.UUID, item, buyerType, name, phone, qty, location, notes, unitPrice, total string) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(phone) == "" {
		return nil, ErrPhoneIsRequired
	}
	if strings.TrimSpace(qty) == "" {
		return nil, ErrQtyIsRequired
	}
	if strings.TrimSpace(location) == "" {
		return nil, ErrLocationIsRequired
	}

	return &Order{
		id:        id,
		item:      item,
		buyerType: buyerType,
		name:      name,
		phone:     phone,
		qty:       qty,
		location:  location,
		notes:     notes,
		unitPrice: unitPrice,
		total:     total,
		status:    StatusNew,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an order from persistence with its stored
// status and creation time.
func RestoreOrder(id kernel.UUID, item, buyerType, name, phone, qty, location, notes, unitPrice, total string, status Status, createdAt time.Time) (*Order, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:        id,
		item:      item,
		buyerType: buyerType,
		name:      name,
		phone:     phone,
		qty:       qty,
		location:  location,
		notes:     notes,
		unitPrice: unitPrice,
		total:     total,
		status:    status,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the order came through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ChangeStatus overwrites the order's status with the given value. The
// target only has to be a member of the fixed set — any state may replace
// any other, including moves out of DELIVERED or CANCELLED. Last writer
// wins across concurrent administrator sessions.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Item returns the human-readable item label.
func (o *Order) Item() string { return o.item }

// BuyerType returns the buyer classification text.
func (o *Order) BuyerType() string { return o.buyerType }

// Name returns the buyer's name.
func (o *Order) Name() string { return o.name }

// Phone returns the buyer's phone number.
func (o *Order) Phone() string { return o.phone }

// Qty returns the quantity exactly as entered.
func (o *Order) Qty() string { return o.qty }

// Location returns the delivery location text.
func (o *Order) Location() string { return o.location }

// Notes returns the free-text notes.
func (o *Order) Notes() string { return o.notes }

// UnitPrice returns the unit price display string.
func (o *Order) UnitPrice() string { return o.unitPrice }

// Total returns the pre-formatted total display string.
func (o *Order) Total() string { return o.total }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// CreatedAt returns the server-assigned creation time.
func (o *Order) CreatedAt() time.Time { return o.createdAt }
