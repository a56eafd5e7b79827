package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
)

// CommitOrderCommandHandler handles the business logic for committing a
// draft into the order collection.
//
// New orders receive the next sequential identifier, derived from the
// highest identifier the collection has issued so far. Removals never
// lower that watermark, so identifiers are not reused. Edits replace the
// stored order in place, keeping identifier, date, and list position.
type CommitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCommitOrderCommandHandler creates a handler for draft commit operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCommitOrderCommandHandler(uowFactory OrderUoWFactory) CommitOrderCommandHandler {
	return CommitOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the commit command and returns the identifier of the
// stored order. Identifier assignment and insertion happen in one
// transaction, so two concurrent commits cannot observe the same
// watermark.
//
// A not-ready draft fails with order.ErrCustomerInfoIncomplete or
// order.ErrNoProductLines before anything is written; the draft itself
// is left untouched.
func (h *CommitOrderCommandHandler) Handle(ctx context.Context, cmd CommitOrderCommand) (kernel.OrderID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.OrderID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.OrderID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	draft := cmd.Draft()

	if !draft.IsNew() {
		committed, err := draft.Finalize(kernel.OrderID{}, cmd.CommittedAt())
		if err != nil {
			return kernel.OrderID{}, err
		}
		if err = orderRepo.Update(ctx, committed); err != nil {
			return kernel.OrderID{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return kernel.OrderID{}, err
		}
		return committed.ID(), nil
	}

	last, issued, err := orderRepo.LastIssuedID(ctx)
	if err != nil {
		return kernel.OrderID{}, err
	}
	if !issued {
		last = kernel.InitialOrderID()
	}

	nextID, err := last.Next()
	if err != nil {
		return kernel.OrderID{}, err
	}

	committed, err := draft.Finalize(nextID, cmd.CommittedAt())
	if err != nil {
		return kernel.OrderID{}, err
	}

	if err = orderRepo.Add(ctx, committed); err != nil {
		return kernel.OrderID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.OrderID{}, err
	}

	return committed.ID(), nil
}
