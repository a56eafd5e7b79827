// Package services provides domain services that operate on order
// aggregates without belonging to a single entity.
//
// The package includes:
//   - ExportFormatter: projects a finalized order into its printable
//     export document
package services
