package commands

import (
	"context"

	"farmstore/internal/core/domain/model/order"
)

// CreateOrderCommandHandler persists submitted orders. The order always
// enters the store in NEW status; there is no idempotency key, so a
// double-submit produces a duplicate order by design.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order submissions.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the command, builds the order aggregate in NEW status,
// and persists it within a transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	newOrder, err := order.NewOrder(cmd.OrderID(),
		cmd.Item(), cmd.BuyerType(), cmd.Name(), cmd.Phone(),
		cmd.Qty(), cmd.Location(), cmd.Notes(), cmd.UnitPrice(), cmd.Total())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
