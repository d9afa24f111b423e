package overview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opservo/fieldops/internal/db"
)

func strPtr(s string) *string { return &s }

func findChecklistItem(t *testing.T, section Section, label string) ChecklistItem {
	t.Helper()
	for _, item := range section.Checklist {
		if item.Label == label {
			return item
		}
	}
	t.Fatalf("checklist item %q not found", label)
	return ChecklistItem{}
}

func findMetric(t *testing.T, section Section, label string) Metric {
	t.Helper()
	for _, m := range section.Metrics {
		if m.Label == label {
			return m
		}
	}
	t.Fatalf("metric %q not found", label)
	return Metric{}
}

func TestAccountSectionFullySetUp(t *testing.T) {
	snap := DefaultSnapshot(time.Now())
	snap.Profile = &db.Profile{OnboardingCompleted: true, Role: "admin"}
	snap.UserPreferences = &db.UserPreferences{
		Timezone:    strPtr("America/Los_Angeles"),
		NotifyEmail: true,
		NotifyPush:  true,
	}

	section := buildAccountSection(Catalog(ClusterAccount), snap)

	assert.Equal(t, StatusReady, section.Status)
	assert.GreaterOrEqual(t, section.Progress, 85)
	assert.Equal(t, "Your account is fully set up.", section.Summary)

	notifications := findChecklistItem(t, section, "Enable notifications")
	assert.True(t, notifications.Completed)
	assert.Contains(t, notifications.Sources, "user_preferences.notify_email")
}

func TestAccountSectionEmptySnapshotIsSafe(t *testing.T) {
	section := buildAccountSection(Catalog(ClusterAccount), DefaultSnapshot(time.Now()))

	assert.Equal(t, 0, section.Progress)
	assert.Equal(t, StatusDanger, section.Status)
	assert.NotEmpty(t, section.Summary)
	for _, m := range section.Metrics {
		assert.NotEmpty(t, m.Value, "metric %q must not render empty", m.Label)
	}
}

func TestFinanceSectionCollectionsBacklog(t *testing.T) {
	snap := DefaultSnapshot(time.Now())
	snap.OpenInvoicesCount = 12
	snap.JobsWeekCount = 2

	section := buildFinanceSection(Catalog(ClusterFinance), snap)

	collections := findChecklistItem(t, section, "Keep collections healthy")
	assert.False(t, collections.Completed, "12 open invoices against max(5, 2) jobs is unhealthy")
	assert.NotEqual(t, StatusReady, section.Status)
	assert.Less(t, section.Progress, readyThreshold)
}

func TestFinanceSectionQuietWeekUsesFloor(t *testing.T) {
	snap := DefaultSnapshot(time.Now())
	snap.OpenInvoicesCount = 4
	snap.JobsWeekCount = 0

	section := buildFinanceSection(Catalog(ClusterFinance), snap)

	collections := findChecklistItem(t, section, "Keep collections healthy")
	assert.True(t, collections.Completed, "4 open invoices is under the floor of 5")
}

func TestCommunicationsSectionMissingBrand(t *testing.T) {
	snap := DefaultSnapshot(time.Now())

	section := buildCommunicationsSection(Catalog(ClusterCommunications), snap)

	assert.Equal(t, "Finish 10DLC registration to start texting customers.", section.Summary)
	assert.Equal(t, StatusDanger, findMetric(t, section, "Brand registration").Status)
	assert.Equal(t, StatusDanger, findMetric(t, section, "Campaign").Status)
}

func TestCommunicationsSectionCarrierStatusClassification(t *testing.T) {
	tests := []struct {
		name   string
		brand  *db.MessagingBrand
		status HealthStatus
	}{
		{"approved is ready", &db.MessagingBrand{ID: "b1", Status: "APPROVED"}, StatusReady},
		{"pending is warning", &db.MessagingBrand{ID: "b1", Status: "pending_review"}, StatusWarning},
		{"missing is danger", nil, StatusDanger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := DefaultSnapshot(time.Now())
			snap.MessagingBrand = tt.brand

			section := buildCommunicationsSection(Catalog(ClusterCommunications), snap)
			assert.Equal(t, tt.status, findMetric(t, section, "Brand registration").Status)
		})
	}
}

func TestCommunicationsSectionNotificationFailures(t *testing.T) {
	snap := DefaultSnapshot(time.Now())
	snap.MessagingBrand = &db.MessagingBrand{ID: "b1", Status: "approved"}
	snap.MessagingCampaign = &db.MessagingCampaign{ID: "c1", BrandID: "b1", Status: "active"}
	snap.NotificationFailuresCount = 7

	section := buildCommunicationsSection(Catalog(ClusterCommunications), snap)

	assert.Equal(t, "7 notifications failed to send this week.", section.Summary)
	assert.Equal(t, StatusWarning, findMetric(t, section, "Failed notifications (7d)").Status)
}

func TestIntegrationsSectionWebhookFailuresDominateSummary(t *testing.T) {
	snap := DefaultSnapshot(time.Now())
	snap.APIKeysCount = 2
	snap.WebhookEndpointIDs = []string{"w1", "w2"}
	snap.WebhookFailuresCount = 3

	section := buildIntegrationsSection(Catalog(ClusterIntegrations), snap)

	assert.Equal(t, "3 webhook deliveries failed in the last 24 hours.", section.Summary)
	assert.Equal(t, StatusDanger, findMetric(t, section, "Webhook failures (24h)").Status)
}

func TestAllBuildersProgressInBounds(t *testing.T) {
	now := time.Now()
	lastSync := now.Add(-time.Hour)

	snapshots := []*Snapshot{
		DefaultSnapshot(now),
		{
			Company:               &db.Company{Name: "Acme Plumbing", SubscriptionStatus: "active", LogoURL: strPtr("https://cdn/logo.png"), AddressLine1: strPtr("1 Main St")},
			CompanySettings:       &db.CompanySettings{BusinessHoursSet: true},
			Profile:               &db.Profile{OnboardingCompleted: true},
			UserPreferences:       &db.UserPreferences{Timezone: strPtr("UTC"), NotifyEmail: true, NotifySMS: true},
			AccountingIntegration: &db.AccountingIntegration{Provider: strPtr("quickbooks"), Connected: true, LastSyncedAt: &lastSync},
			MessagingBrand:        &db.MessagingBrand{ID: "b1", Status: "approved"},
			MessagingCampaign:     &db.MessagingCampaign{ID: "c1", BrandID: "b1", Status: "active"},
			TeamActiveCount:       6,
			JobsWeekCount:         40,
			ServiceAreasCount:     2,
			BankAccountsCount:     1,
			TaxRatesCount:         3,
			APIKeysCount:          1,
			WebhookEndpointIDs:    []string{"w1"},
			GeneratedAt:           now,
		},
	}

	for _, snap := range snapshots {
		for _, id := range ClusterOrder {
			section := sectionBuilders[id](Catalog(id), snap)
			require.GreaterOrEqual(t, section.Progress, 0, "cluster %s", id)
			require.LessOrEqual(t, section.Progress, 100, "cluster %s", id)
			require.NotEmpty(t, section.Summary, "cluster %s", id)
			require.NotEmpty(t, section.Checklist, "cluster %s", id)
		}
	}
}
