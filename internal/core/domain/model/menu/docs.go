// Package menu models the static catalog of drinks a customer can order.
//
// The package includes:
//   - Item: an immutable catalog entry with a positive preparation duration
//   - Catalog: a validated, ordered set of items indexed by id
//
// Catalog validation is the boundary for configuration errors. An item with an
// empty id or name, a non-positive duration, or a duplicated id fails catalog
// loading, so the preparation engine never sees such an item at runtime.
package menu
