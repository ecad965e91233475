package commands

import (
	"context"

	"farmstore/internal/core/domain/model/catalog"
)

// AddFishVariantCommandHandler attaches variants to existing fish types.
type AddFishVariantCommandHandler struct {
	uowFactory FishTypeUoWFactory
}

// NewAddFishVariantCommandHandler creates a handler for variant creation.
func NewAddFishVariantCommandHandler(uowFactory FishTypeUoWFactory) AddFishVariantCommandHandler {
	return AddFishVariantCommandHandler{uowFactory: uowFactory}
}

// Handle verifies the owning fish type exists, then persists the variant
// within the same transaction.
func (h *AddFishVariantCommandHandler) Handle(ctx context.Context, cmd AddFishVariantCommand) error {
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

	fishType, err := uow.FishTypeRepository().Get(ctx, cmd.FishTypeID())
	if err != nil {
		return err
	}

	variant, err := catalog.NewFishVariant(cmd.VariantID(), fishType.ID(), cmd.ServiceType(),
		cmd.SizeLabel(), cmd.Price(), cmd.Notes(), cmd.PrepTimeMins(), cmd.IsAvailable())
	if err != nil {
		return err
	}

	if err = uow.FishTypeRepository().AddVariant(ctx, variant); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
