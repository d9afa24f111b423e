package overview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressFromSteps(t *testing.T) {
	tests := []struct {
		name      string
		satisfied int
		total     int
		want      int
	}{
		{"empty checklist is vacuously complete", 0, 0, 100},
		{"nothing satisfied", 0, 4, 0},
		{"half satisfied", 2, 4, 50},
		{"one of three rounds", 1, 3, 33},
		{"two of three rounds", 2, 3, 67},
		{"all satisfied", 4, 4, 100},
		{"negative satisfied clamps to zero", -1, 4, 0},
		{"overshoot clamps to total", 9, 4, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProgressFromSteps(tt.satisfied, tt.total))
		})
	}
}

func TestProgressFromStepsMonotonicInSatisfied(t *testing.T) {
	for total := 1; total <= 10; total++ {
		prev := -1
		for satisfied := 0; satisfied <= total; satisfied++ {
			p := ProgressFromSteps(satisfied, total)
			assert.GreaterOrEqual(t, p, prev)
			assert.GreaterOrEqual(t, p, 0)
			assert.LessOrEqual(t, p, 100)
			prev = p
		}
	}
}

func TestDeriveHealthStatusBands(t *testing.T) {
	assert.Equal(t, StatusDanger, DeriveHealthStatus(0))
	assert.Equal(t, StatusDanger, DeriveHealthStatus(49))
	assert.Equal(t, StatusWarning, DeriveHealthStatus(50))
	assert.Equal(t, StatusWarning, DeriveHealthStatus(79))
	assert.Equal(t, StatusReady, DeriveHealthStatus(80))
	assert.Equal(t, StatusReady, DeriveHealthStatus(100))
}

func TestDeriveHealthStatusMonotonicAndTotal(t *testing.T) {
	rank := map[HealthStatus]int{StatusDanger: 0, StatusWarning: 1, StatusReady: 2}

	prev := 0
	for progress := 0; progress <= 100; progress++ {
		status := DeriveHealthStatus(progress)
		r, known := rank[status]
		assert.True(t, known, "unknown status %q at progress %d", status, progress)
		assert.GreaterOrEqual(t, r, prev)
		prev = r
	}
}

func TestHealthStatusLabels(t *testing.T) {
	assert.Equal(t, "Ready", StatusReady.Label())
	assert.Equal(t, "Warning", StatusWarning.Label())
	assert.Equal(t, "Critical", StatusDanger.Label())
}
