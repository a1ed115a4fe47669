// Package engine drives the order lifecycle: it owns the Station, advances the preparing
// order on every clock tick and exposes the command and query surface used by the
// application layer.
//
// # Lifecycle
//
//	Queued -> Preparing -> Ready -> (picked up)
//
// Promotion into the preparing slot happens synchronously on PlaceOrder and on every tick
// while the station is idle. When a tick brings progress to 1 the order is completed and
// the next queued order is promoted within the same tick, so no reader ever observes a
// finished order still in the preparing slot.
//
// # Concurrency
//
// Ticks arrive on the clock's goroutine and commands on request goroutines. A single
// mutex serializes them; all queries return copies.
//
// # Events
//
// Every transition is published on a Broker so that presentation code can subscribe
// instead of polling.
package engine
