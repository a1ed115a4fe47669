// Package order provides the Order entity placed by customers and the Status state
// machine that governs its lifecycle.
//
// The package includes:
//   - Order: a single placement of a menu item, identified by a fresh UUID
//   - Status: a state machine that enforces valid lifecycle transitions
//
// Key business rules:
//   - An order copies the name and duration of the menu item it was placed for
//   - Order status follows a fixed workflow: Queued -> Preparing -> Ready
//   - No transition skips a state and none goes backwards
//   - Picking up a Ready order removes it; there is no terminal status for that
package order
