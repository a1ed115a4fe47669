// Package services provides domain services: stateless business rules that do not
// belong to a single aggregate.
//
// The package includes:
//   - ComputeProgress: maps elapsed preparation time and an order duration to a
//     completion fraction in [0, 1]
package services
