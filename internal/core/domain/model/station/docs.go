// Package station provides the Station aggregate: the single preparation slot of the
// shop together with the queue in front of it and the pickup pool behind it.
//
// A Station owns three collections:
//   - queued: orders waiting, strictly first-in-first-out
//   - preparing: at most one order, with its elapsed time and progress fraction
//   - ready: finished orders in completion order, waiting to be picked up
//
// Key business rules:
//   - PromoteNext is the only way an order enters the preparing slot
//   - CompleteCurrent is the only way an order leaves it
//   - An order is in exactly one collection at a time
//   - Progress is reset to 0 on every promotion and completion
//
// Station is not safe for concurrent use; the engine controller serializes access.
package station
