package commands

import (
	"context"

	"farmstore/internal/core/domain/model/catalog"
)

// AddFishTypeCommandHandler persists new family-pack fish types.
type AddFishTypeCommandHandler struct {
	uowFactory FishTypeUoWFactory
}

// NewAddFishTypeCommandHandler creates a handler for fish type registration.
func NewAddFishTypeCommandHandler(uowFactory FishTypeUoWFactory) AddFishTypeCommandHandler {
	return AddFishTypeCommandHandler{uowFactory: uowFactory}
}

// Handle builds the fish type aggregate and persists it within a transaction.
func (h *AddFishTypeCommandHandler) Handle(ctx context.Context, cmd AddFishTypeCommand) error {
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

	fishType, err := catalog.NewFishType(cmd.FishTypeID(), cmd.Name(),
		cmd.Description(), cmd.ImageURL(), cmd.IsActive())
	if err != nil {
		return err
	}

	if err = uow.FishTypeRepository().Add(ctx, fishType); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
