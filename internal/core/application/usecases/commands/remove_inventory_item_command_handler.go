package commands

import (
	"context"

	"farmstore/internal/core/domain/model/catalog"
	"farmstore/internal/pkg/errs"
)

// RemoveInventoryItemCommandHandler deletes inventory listings.
type RemoveInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewRemoveInventoryItemCommandHandler creates a handler for inventory deletion.
func NewRemoveInventoryItemCommandHandler(uowFactory InventoryUoWFactory) RemoveInventoryItemCommandHandler {
	return RemoveInventoryItemCommandHandler{uowFactory: uowFactory}
}

// Handle removes the listing from the repository matching the command's
// category.
func (h *RemoveInventoryItemCommandHandler) Handle(ctx context.Context, cmd RemoveInventoryItemCommand) error {
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

	var err error
	switch cmd.Category() {
	case catalog.CategoryFish:
		err = uow.FishItemRepository().Remove(ctx, cmd.ItemID())
	case catalog.CategorySheep:
		err = uow.SheepItemRepository().Remove(ctx, cmd.ItemID())
	case catalog.CategoryVegetables:
		err = uow.VegetableItemRepository().Remove(ctx, cmd.ItemID())
	default:
		err = errs.NewValueIsInvalidError("category")
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
