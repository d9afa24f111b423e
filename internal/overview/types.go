// Package overview builds the consolidated settings overview read model
// for the dashboard. It fans out tenant-scoped reads, scores each settings
// cluster and assembles a single payload. Read models here are separate
// from domain models and optimized for display.
package overview

import (
	"time"
)

type HealthStatus string

const (
	StatusReady   HealthStatus = "ready"
	StatusWarning HealthStatus = "warning"
	StatusDanger  HealthStatus = "danger"
)

// Label is the user-facing form used in meta alerts.
func (s HealthStatus) Label() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusWarning:
		return "Warning"
	default:
		return "Critical"
	}
}

type ClusterID string

const (
	ClusterAccount        ClusterID = "account"
	ClusterWorkspace      ClusterID = "workspace"
	ClusterCommunications ClusterID = "communications"
	ClusterOperations     ClusterID = "operations"
	ClusterFinance        ClusterID = "finance"
	ClusterIntegrations   ClusterID = "integrations"
	ClusterAnalytics      ClusterID = "analytics"
)

// ClusterOrder fixes the build order so that meta alerts are stable.
var ClusterOrder = []ClusterID{
	ClusterAccount,
	ClusterWorkspace,
	ClusterCommunications,
	ClusterOperations,
	ClusterFinance,
	ClusterIntegrations,
	ClusterAnalytics,
}

// Metric is one labeled value on a section card. Its status badge is
// independent of the section-level status.
type Metric struct {
	Label  string       `json:"label"`
	Value  string       `json:"value"`
	Status HealthStatus `json:"status"`
}

// ChecklistItem is one readiness condition. Sources lists the snapshot
// fields the condition was derived from, for traceability only.
type ChecklistItem struct {
	Label     string   `json:"label"`
	Href      string   `json:"href"`
	Completed bool     `json:"completed"`
	Sources   []string `json:"sources"`
}

type QuickAction struct {
	Label   string `json:"label"`
	Href    string `json:"href"`
	Variant string `json:"variant"`
}

type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Section is the derived, displayable output for one settings cluster.
// Constructed fresh on every aggregation, never mutated afterwards.
type Section struct {
	ID           ClusterID       `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Icon         string          `json:"icon"`
	Progress     int             `json:"progress"`
	Status       HealthStatus    `json:"status"`
	Summary      string          `json:"summary"`
	Metrics      []Metric        `json:"metrics"`
	Checklist    []ChecklistItem `json:"checklist"`
	QuickActions []QuickAction   `json:"quick_actions"`
	Links        []Link          `json:"links"`
}

type Meta struct {
	CompanyName           string     `json:"company_name"`
	SubscriptionStatus    string     `json:"subscription_status"`
	TeamCount             int        `json:"team_count"`
	Alerts                []string   `json:"alerts"`
	POSystemEnabled       bool       `json:"po_system_enabled"`
	POSystemLastEnabledAt *time.Time `json:"po_system_last_enabled_at,omitempty"`
	GeneratedAt           time.Time  `json:"generated_at"`
}

// Payload is the full overview read model returned to the dashboard.
type Payload struct {
	Meta     Meta      `json:"meta"`
	Sections []Section `json:"sections"`
}
