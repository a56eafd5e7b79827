package commands_test

import (
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoveOrderCommand_ValidInput(t *testing.T) {
	id, err := kernel.ParseOrderID("ORD-003")
	require.NoError(t, err)

	cmd, err := commands.NewRemoveOrderCommand(id)
	require.NoError(t, err)
	assert.Equal(t, "ORD-003", cmd.OrderID().String())
}

func TestNewRemoveOrderCommand_InvalidOrderID(t *testing.T) {
	var invalidID kernel.OrderID // zero value, should trigger validation error
	_, err := commands.NewRemoveOrderCommand(invalidID)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrOrderIDIsNotConstructed)
}
