package commands

import (
	"context"

	"farmstore/internal/core/domain/model/catalog"
)

// AddSheepItemCommandHandler persists new sheep listings.
type AddSheepItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewAddSheepItemCommandHandler creates a handler for sheep listing creation.
func NewAddSheepItemCommandHandler(uowFactory InventoryUoWFactory) AddSheepItemCommandHandler {
	return AddSheepItemCommandHandler{uowFactory: uowFactory}
}

// Handle builds the sheep item aggregate and persists it within a transaction.
func (h *AddSheepItemCommandHandler) Handle(ctx context.Context, cmd AddSheepItemCommand) error {
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

	item, err := catalog.NewSheepItem(cmd.ItemID(), cmd.SaleType(), cmd.TagID(),
		cmd.WeightKg(), cmd.AgeMonths(), cmd.Price(), cmd.Status(), cmd.Notes())
	if err != nil {
		return err
	}

	if err = uow.SheepItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
