package commands

import (
	"context"

	"farmstore/internal/core/domain/model/catalog"
)

// AddVegetableItemCommandHandler persists new vegetable listings.
type AddVegetableItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewAddVegetableItemCommandHandler creates a handler for vegetable listing creation.
func NewAddVegetableItemCommandHandler(uowFactory InventoryUoWFactory) AddVegetableItemCommandHandler {
	return AddVegetableItemCommandHandler{uowFactory: uowFactory}
}

// Handle builds the vegetable item aggregate and persists it within a transaction.
func (h *AddVegetableItemCommandHandler) Handle(ctx context.Context, cmd AddVegetableItemCommand) error {
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

	item, err := catalog.NewVegetableItem(cmd.ItemID(), cmd.Category(), cmd.Name(),
		cmd.Unit(), cmd.Price(), cmd.AvailableQty(), cmd.Status(), cmd.Notes())
	if err != nil {
		return err
	}

	if err = uow.VegetableItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
