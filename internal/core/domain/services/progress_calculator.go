package services

import (
	"fmt"
	"time"
)

// ComputeProgress returns clamp(elapsed / duration, 0, 1).
//
// It is pure and monotonically non-decreasing in elapsed for a fixed duration.
// A non-positive durationSeconds is a contract violation (catalog validation rejects
// such items) and panics.
//
// Example:
//
//	services.ComputeProgress(0, 4)                      // 0
//	services.ComputeProgress(2*time.Second, 4)          // 0.5
//	services.ComputeProgress(4*time.Second, 4)          // 1
//	services.ComputeProgress(9*time.Second, 4)          // 1
func ComputeProgress(elapsed time.Duration, durationSeconds int) float64 {
	if durationSeconds <= 0 {
		panic(fmt.Sprintf("services: ComputeProgress called with non-positive duration %d", durationSeconds))
	}

	fraction := float64(elapsed.Milliseconds()) / float64(int64(durationSeconds)*1000)
	switch {
	case fraction < 0:
		return 0
	case fraction > 1:
		return 1
	default:
		return fraction
	}
}
