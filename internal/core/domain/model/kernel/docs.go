// Package kernel holds the shared value objects of the barista domain.
//
// The package includes:
//   - UUID: the identifier value object used for orders
//
// Values are immutable and validate their own construction, so aggregates can
// rely on them without re-checking.
package kernel
