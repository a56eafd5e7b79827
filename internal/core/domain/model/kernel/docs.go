// Package kernel provides shared value objects used across the order
// domain. It contains the building blocks that other domain packages
// compose into aggregates:
//
//   - OrderID: the sequential human-readable order identifier (ORD-001,
//     ORD-002, ...) together with the pure successor function that
//     replaces a hidden global counter
//   - Money: a two-decimal monetary amount backed by exact decimal
//     arithmetic
//
// All value objects in this package are immutable, validate themselves on
// construction, and use ConstructorGuard to reject zero values that
// bypassed their constructors.
package kernel
