package overview

import "math"

// Progress bands for health classification. Chosen values, not inherited:
// 80+ reads as ready, 50-79 needs attention, below 50 is critical.
const (
	readyThreshold   = 80
	warningThreshold = 50
)

// ProgressFromSteps maps satisfied/total readiness steps to [0,100].
// An empty checklist is vacuously complete.
func ProgressFromSteps(satisfied, total int) int {
	if total <= 0 {
		return 100
	}
	if satisfied < 0 {
		satisfied = 0
	}
	if satisfied > total {
		satisfied = total
	}
	return int(math.Round(float64(satisfied) / float64(total) * 100))
}

// DeriveHealthStatus is a monotonic step function over progress, defined
// for any integer input.
func DeriveHealthStatus(progress int) HealthStatus {
	switch {
	case progress >= readyThreshold:
		return StatusReady
	case progress >= warningThreshold:
		return StatusWarning
	default:
		return StatusDanger
	}
}
