package commands

import (
	"context"

	"farmstore/internal/core/domain/model/catalog"
)

// AddFishItemCommandHandler persists new fish inventory listings.
type AddFishItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewAddFishItemCommandHandler creates a handler for fish listing creation.
func NewAddFishItemCommandHandler(uowFactory InventoryUoWFactory) AddFishItemCommandHandler {
	return AddFishItemCommandHandler{uowFactory: uowFactory}
}

// Handle builds the fish item aggregate and persists it within a transaction.
func (h *AddFishItemCommandHandler) Handle(ctx context.Context, cmd AddFishItemCommand) error {
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

	item, err := catalog.NewFishItem(cmd.ItemID(), cmd.ItemType(), cmd.Name(), cmd.Detail(), cmd.Price(), cmd.Status())
	if err != nil {
		return err
	}

	if err = uow.FishItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
