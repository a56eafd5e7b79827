// Package product provides the product Line value object: one purchasable
// entry within an order, holding a name, a unit price and a quantity.
//
// The line total is never stored. It is always recomputed from the unit
// price and the quantity, so it can never drift from its inputs. Editing
// a line means replacing it whole with a newly constructed one.
package product
