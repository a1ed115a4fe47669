package order

import (
	"fmt"

	"barista/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Queued ──> Preparing ──> Ready ──> (picked up, removed)
//
// Only one order may be Preparing at a time; the station aggregate enforces that,
// Status only enforces the per-order ordering.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Queued is the initial status; the order waits for the station.
	Queued

	// Preparing means the order occupies the station and is accumulating progress.
	Preparing

	// Ready means preparation finished and the order waits in the pickup pool.
	Ready
)

var statusNames = map[Status]string{
	Unknown:   "Unknown",
	Queued:    "Queued",
	Preparing: "Preparing",
	Ready:     "Ready",
}

// Validate checks if the Status value is one of Queued, Preparing or Ready.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Invalid values render as "Unknown".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Prepare transitions Queued -> Preparing.
//
// Example:
//
//	next, err := order.Queued.Prepare() // next == order.Preparing
func (s Status) Prepare() (Status, error) {
	if s != Queued {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to prepare", s.String()),
		)
	}

	return Preparing, nil
}

// Complete transitions Preparing -> Ready.
func (s Status) Complete() (Status, error) {
	if s != Preparing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Ready, nil
}
