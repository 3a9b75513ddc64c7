// Package pizza contains the menu item aggregate of the catalog.
// Pizzas are referenced by order line items only by value: orders snapshot
// the name and price at creation time, so catalog edits and deletions never
// cascade into the order pipeline.
package pizza
