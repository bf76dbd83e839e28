// Package delivery implements the delivery assignment record: at most one
// Delivery per order, a linear status progression driven by driver events,
// and write-once pickup/delivery milestones.
//
// Status updates are accepted only along the linear progression, with FAILED
// reachable from any non-terminal status. A repeated status is a no-op so
// drivers can keep pushing location updates.
package delivery
