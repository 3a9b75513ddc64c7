// Package order contains the order aggregate of the pipeline.
//
// An order snapshots its line items (pizza name and price) at creation time
// and carries a courier snapshot maintained by the coordinator. Status is a
// free-form six-value enum with no enforced transition graph; the only
// status-driven behavior, releasing the bound courier when an order leaves
// the active set, is orchestrated one level up by the assignment service.
package order
