package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrRemoveOrderCommandIsNotConstructed = errors.New(
	"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
)

// RemoveOrderCommand represents a request to delete an order from the
// collection by identifier. Removing an identifier that is not present
// succeeds without effect.
type RemoveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewRemoveOrderCommand creates a command to remove the order with the
// given identifier.
func NewRemoveOrderCommand(orderID kernel.OrderID) (RemoveOrderCommand, error) {
	removeCommand := RemoveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := removeCommand.setOrderID(orderID); err != nil {
		return RemoveOrderCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveOrderCommandIsNotConstructed if validation fails.
func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to remove.
func (c RemoveOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *RemoveOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
