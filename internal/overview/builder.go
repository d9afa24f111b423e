package overview

import (
	"fmt"
	"strings"
	"time"
)

// signal is one readiness condition inside a cluster. Sources names the
// snapshot fields the condition reads, carried into the checklist for
// traceability.
type signal struct {
	label   string
	href    string
	ok      bool
	sources []string
}

// newSection scores the signals and produces a section skeleton; builders
// fill in Summary and Metrics afterwards.
func newSection(cfg ClusterConfig, signals []signal) Section {
	satisfied := 0
	checklist := make([]ChecklistItem, 0, len(signals))
	for _, sig := range signals {
		if sig.ok {
			satisfied++
		}
		checklist = append(checklist, ChecklistItem{
			Label:     sig.label,
			Href:      sig.href,
			Completed: sig.ok,
			Sources:   sig.sources,
		})
	}

	progress := ProgressFromSteps(satisfied, len(signals))
	return Section{
		ID:           cfg.ID,
		Title:        cfg.Title,
		Description:  cfg.Description,
		Icon:         cfg.Icon,
		Progress:     progress,
		Status:       DeriveHealthStatus(progress),
		Checklist:    checklist,
		QuickActions: cfg.QuickActions,
		Links:        cfg.Links,
	}
}

func boolStatus(ok bool) HealthStatus {
	if ok {
		return StatusReady
	}
	return StatusWarning
}

// strOr dereferences an optional string with a fallback so nil never
// reaches user-visible text.
func strOr(p *string, fallback string) string {
	if p == nil || *p == "" {
		return fallback
	}
	return *p
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "never"
	}
	return t.Format("Jan 2, 2006")
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// Carrier registration statuses considered fully operational, compared
// case-insensitively against what the carrier network reports.
var approvedCarrierStatuses = map[string]bool{
	"approved":   true,
	"verified":   true,
	"registered": true,
	"active":     true,
}

// classifyCarrierStatus is the three-way fallback for 10DLC entities:
// missing entity is danger, present-but-unapproved is warning.
func classifyCarrierStatus(exists bool, status string) HealthStatus {
	if !exists {
		return StatusDanger
	}
	if approvedCarrierStatuses[strings.ToLower(strings.TrimSpace(status))] {
		return StatusReady
	}
	return StatusWarning
}
