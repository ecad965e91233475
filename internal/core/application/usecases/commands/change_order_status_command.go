package commands

import (
	"errors"

	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/core/domain/model/order"
	"farmstore/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents an administrator overwriting an
// order's status. The target only has to be a member of the fixed status
// set; no transition rules apply.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a status-overwrite command. The
// status is expected to be already parsed (and therefore upper-cased) via
// order.ParseStatus.
func NewChangeOrderStatusCommand(orderID kernel.UUID, status order.Status) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), status.Validate()); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

// Status returns the target status.
func (c ChangeOrderStatusCommand) Status() order.Status { return c.status }
