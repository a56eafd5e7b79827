package commands

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrCommitOrderCommandIsNotConstructed = errors.New(
		"CommitOrderCommand must be created via NewCommitOrderCommand constructor",
	)
	ErrCommittedAtIsRequired = errors.New("committedAt is required")
)

// CommitOrderCommand represents a request to turn a finished draft into a
// stored order. For a new-order draft the handler assigns the next
// sequential identifier and stamps the commit time as the order date; for
// an edit draft the stored identifier and date are preserved.
//
// Example:
//
//	cmd, err := NewCommitOrderCommand(draft, time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid commit request: %w", err)
//	}
//
//	handler := NewCommitOrderCommandHandler(uowFactory)
//	id, err := handler.Handle(ctx, cmd)
type CommitOrderCommand struct { //nolint:recvcheck //using for validation
	draft       *order.Draft
	committedAt time.Time

	guard guard.ConstructorGuard
}

// NewCommitOrderCommand creates a command to commit the given draft.
// Validates that the draft was properly constructed and the commit time
// is set. Draft readiness itself (complete customer, at least one line)
// is checked by the handler so that a not-ready draft stays open.
func NewCommitOrderCommand(draft *order.Draft, committedAt time.Time) (CommitOrderCommand, error) {
	commitCommand := CommitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		commitCommand.setDraft(draft),
		commitCommand.setCommittedAt(committedAt),
	); err != nil {
		return CommitOrderCommand{}, err
	}

	return commitCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCommitOrderCommandIsNotConstructed if validation fails.
func (c CommitOrderCommand) Validate() error {
	return c.guard.Validate(ErrCommitOrderCommandIsNotConstructed)
}

// Draft returns the draft to commit.
func (c CommitOrderCommand) Draft() *order.Draft {
	return c.draft
}

// CommittedAt returns the commit timestamp.
func (c CommitOrderCommand) CommittedAt() time.Time {
	return c.committedAt
}

func (c *CommitOrderCommand) setDraft(draft *order.Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	c.draft = draft
	return nil
}

func (c *CommitOrderCommand) setCommittedAt(committedAt time.Time) error {
	if committedAt.IsZero() {
		return ErrCommittedAtIsRequired
	}

	c.committedAt = committedAt
	return nil
}
