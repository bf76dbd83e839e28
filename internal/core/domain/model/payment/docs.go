// Package payment implements the payment ledger: at most one Payment per
// order, a synchronous processing outcome, and monotonic partial-refund
// accounting.
//
// The ledger is append-only in spirit: a payment's mutations are constrained
// by monotonic and bounded-sum rules (the running refund total never
// decreases and never exceeds the charged amount). Concurrent refunds against
// the same payment are serialized by optimistic versioning at the storage
// boundary.
//
// A FAILED payment keeps its claim on the order identifier slot but may be
// superseded by a fresh charge attempt, so callers can re-attempt a declined
// charge without ever producing two payments for one order.
package payment
