package overview

import (
	"strconv"
	"time"
)

const accountingSyncMaxAge = 7 * 24 * time.Hour

func buildIntegrationsSection(cfg ClusterConfig, s *Snapshot) Section {
	hasAPIKey := s.APIKeysCount > 0
	webhooksHealthy := len(s.WebhookEndpointIDs) > 0 && s.WebhookFailuresCount == 0

	syncFresh := s.AccountingIntegration != nil &&
		s.AccountingIntegration.Connected &&
		s.AccountingIntegration.LastSyncedAt != nil &&
		s.GeneratedAt.Sub(*s.AccountingIntegration.LastSyncedAt) < accountingSyncMaxAge

	processorConnected := s.PaymentSettings != nil && s.PaymentSettings.ProcessorConnected

	section := newSection(cfg, []signal{
		{
			label:   "Create an API key",
			href:    "/settings/api-keys",
			ok:      hasAPIKey,
			sources: []string{"api_keys_count"},
		},
		{
			label:   "Keep webhooks healthy",
			href:    "/settings/webhooks",
			ok:      webhooksHealthy,
			sources: []string{"webhook_endpoint_ids", "webhook_failures_count"},
		},
		{
			label:   "Keep accounting sync fresh",
			href:    "/settings/accounting",
			ok:      syncFresh,
			sources: []string{"accounting_integration.last_synced_at"},
		},
		{
			label:   "Connect a payment processor",
			href:    "/settings/payments",
			ok:      processorConnected,
			sources: []string{"payment_settings.processor", "payment_settings.processor_connected"},
		},
	})

	switch {
	case s.WebhookFailuresCount > 0:
		section.Summary = strconv.Itoa(s.WebhookFailuresCount) + " webhook deliveries failed in the last 24 hours."
	case !processorConnected:
		section.Summary = "Connect a payment processor to accept cards online."
	case !hasAPIKey && len(s.WebhookEndpointIDs) == 0:
		section.Summary = "No external integrations are configured yet."
	default:
		section.Summary = "Connected apps are syncing normally."
	}

	webhookStatus := StatusReady
	if len(s.WebhookEndpointIDs) == 0 {
		webhookStatus = StatusWarning
	}
	if s.WebhookFailuresCount > 0 {
		webhookStatus = StatusDanger
	}

	section.Metrics = []Metric{
		{Label: "API keys", Value: strconv.Itoa(s.APIKeysCount), Status: boolStatus(hasAPIKey)},
		{Label: "Webhook endpoints", Value: strconv.Itoa(len(s.WebhookEndpointIDs)), Status: webhookStatus},
		{Label: "Webhook failures (24h)", Value: strconv.Itoa(s.WebhookFailuresCount), Status: webhookStatus},
		{Label: "Automations", Value: strconv.Itoa(s.AutomationsCount), Status: StatusReady},
	}

	return section
}
