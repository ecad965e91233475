package commands

import (
	"context"
)

// ChangeOrderStatusCommandHandler applies administrator status overwrites.
// The write is a single-row update with no optimistic-concurrency check:
// when two administrator sessions race, the last writer wins.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status updates.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, overwrites its status, and persists the change.
// Returns an ObjectNotFoundError when the order does not exist.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	existing, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = existing.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
