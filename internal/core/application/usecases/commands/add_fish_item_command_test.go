package commands_test

import (
	"testing"

	"farmstore/internal/core/application/usecases/commands"
	"farmstore/internal/core/domain/model/catalog"
	"farmstore/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddFishItemCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewAddFishItemCommand(id, catalog.FishSeed, "Rohu seed", "2 inch", "₹2/piece", "Available")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ItemID())
	assert.Equal(t, catalog.FishSeed, cmd.ItemType())
	assert.Equal(t, "Rohu seed", cmd.Name())
	assert.Equal(t, "₹2/piece", cmd.Price())
}

func TestNewAddFishItemCommand_MissingName(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewAddFishItemCommand(id, catalog.FishFresh, "   ", "", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrFishItemNameIsRequired)
}

func TestNewAddFishItemCommand_InvalidItemID(t *testing.T) {
	_, err := commands.NewAddFishItemCommand(kernel.UUID{}, catalog.FishBulk, "Katla", "", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
