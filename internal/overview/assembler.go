package overview

import (
	"fmt"
)

type sectionBuilder func(ClusterConfig, *Snapshot) Section

var sectionBuilders = map[ClusterID]sectionBuilder{
	ClusterAccount:        buildAccountSection,
	ClusterWorkspace:      buildWorkspaceSection,
	ClusterCommunications: buildCommunicationsSection,
	ClusterOperations:     buildOperationsSection,
	ClusterFinance:        buildFinanceSection,
	ClusterIntegrations:   buildIntegrationsSection,
	ClusterAnalytics:      buildAnalyticsSection,
}

// Assemble builds the full overview payload from a snapshot. Pure: the
// same snapshot value always yields a deep-equal payload.
func Assemble(s *Snapshot) *Payload {
	sections := make([]Section, 0, len(ClusterOrder))
	alerts := []string{}

	for _, id := range ClusterOrder {
		section := sectionBuilders[id](Catalog(id), s)
		sections = append(sections, section)
		if section.Status != StatusReady {
			alerts = append(alerts, fmt.Sprintf("%s: %s", section.Status.Label(), section.Title))
		}
	}

	meta := Meta{
		TeamCount:   s.TeamActiveCount,
		Alerts:      alerts,
		GeneratedAt: s.GeneratedAt,
	}
	if s.Company != nil {
		meta.CompanyName = s.Company.Name
		meta.SubscriptionStatus = s.Company.SubscriptionStatus
		meta.POSystemEnabled = s.Company.POSystemEnabled
		meta.POSystemLastEnabledAt = s.Company.POSystemLastEnabledAt
	}

	return &Payload{Meta: meta, Sections: sections}
}
