// Package order implements the Order aggregate: the lines a customer ordered,
// the totals derived from them, and the status state machine that governs the
// order lifecycle.
//
// The aggregate enforces:
//   - Totals are always recomputed from the lines (subtotal = Σ line
//     subtotals, total = subtotal + fixed delivery fee) and never mutated
//     independently
//   - Status changes only through the explicit transition table; DELIVERED
//     and CANCELLED are terminal
//   - Cancellation is rejected once preparation has started
//
// Orders are created once at placement in PENDING status and are never
// physically deleted. Payments and deliveries for an order are owned by their
// own packages; this package never reaches into them.
package order
