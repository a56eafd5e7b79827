// Package order provides the Order aggregate and its draft lifecycle.
//
// The package includes:
//   - Order: the aggregate root combining a customer profile, a creation
//     date and an ordered list of product lines, with a derived grand
//     total and an immutable sequential identifier
//   - Summary: the reduced flat view (id, name, address, date, total)
//     used by listings that do not need the full customer profile
//   - Draft: the in-progress, uncommitted order undergoing two-step entry
//     (customer info, then product lines) with an explicit line-edit
//     buffer
//   - Step: the state machine for the two entry steps
//
// Key business rules:
//   - The grand total is always the sum of the line totals, recomputed,
//     never edited independently
//   - Identifier and date are stamped once when a new draft is finalized
//     and preserved unchanged on every subsequent edit
//   - Advancing from customer entry to line entry requires a complete
//     customer profile; going back is always allowed and loses nothing
//   - Finalizing requires a complete profile and at least one line
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation to ensure business
// rules are enforced.
package order
