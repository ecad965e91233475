package commands_test

import (
	"testing"

	"farmstore/internal/core/application/usecases/commands"
	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id,
		"Rohu - Cut & Cleaned - 1 kg", "Home Cook", "Asha", "9876543210",
		"1.5", "Market Road", "Category: fish", "₹320/kg", "₹480")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "Rohu - Cut & Cleaned - 1 kg", cmd.Item())
	assert.Equal(t, "Home Cook", cmd.BuyerType())
	assert.Equal(t, "Asha", cmd.Name())
	assert.Equal(t, "9876543210", cmd.Phone())
	assert.Equal(t, "1.5", cmd.Qty())
	assert.Equal(t, "Market Road", cmd.Location())
	assert.Equal(t, "₹480", cmd.Total())
}

func TestNewCreateOrderCommand_OptionalFieldsMayBeBlank(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, "", "", "", "9876543210", "1", "Market Road", "", "", "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Item())
	assert.Empty(t, cmd.Name())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, "item", "", "", "9876543210", "1", "Market Road", "", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_MissingPhone(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewCreateOrderCommand(id, "item", "", "", "  ", "1", "Market Road", "", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrPhoneIsRequired)
}

func TestNewCreateOrderCommand_MissingQty(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewCreateOrderCommand(id, "item", "", "", "9876543210", "", "Market Road", "", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrQtyIsRequired)
}

func TestNewCreateOrderCommand_MissingLocation(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewCreateOrderCommand(id, "item", "", "", "9876543210", "1", "", "", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrLocationIsRequired)
}
