package overview

import "strconv"

func buildWorkspaceSection(cfg ClusterConfig, s *Snapshot) Section {
	profileComplete := s.Company != nil &&
		strOr(s.Company.LogoURL, "") != "" &&
		strOr(s.Company.AddressLine1, "") != ""
	hoursSet := s.CompanySettings != nil && s.CompanySettings.BusinessHoursSet
	hasServiceArea := s.ServiceAreasCount > 0
	invitesSettled := s.TeamInvitedCount == 0

	section := newSection(cfg, []signal{
		{
			label:   "Complete company profile",
			href:    "/settings/company",
			ok:      profileComplete,
			sources: []string{"company.logo_url", "company.address_line1"},
		},
		{
			label:   "Set business hours",
			href:    "/settings/company/hours",
			ok:      hoursSet,
			sources: []string{"company_settings.business_hours_set"},
		},
		{
			label:   "Add a service area",
			href:    "/settings/service-areas",
			ok:      hasServiceArea,
			sources: []string{"service_areas_count"},
		},
		{
			label:   "Resolve pending invites",
			href:    "/settings/team",
			ok:      invitesSettled,
			sources: []string{"team_invited_count"},
		},
	})

	switch {
	case !profileComplete:
		section.Summary = "Add your logo and address so documents look professional."
	case !hasServiceArea:
		section.Summary = "Define at least one service area to enable routing."
	case s.TeamInvitedCount > 0:
		section.Summary = strconv.Itoa(s.TeamInvitedCount) + " teammate invites are still pending."
	default:
		section.Summary = "Your workspace is ready for the whole team."
	}

	teamStatus := StatusReady
	if s.TeamActiveCount == 0 {
		teamStatus = StatusWarning
	}

	section.Metrics = []Metric{
		{Label: "Active teammates", Value: strconv.Itoa(s.TeamActiveCount), Status: teamStatus},
		{Label: "Pending invites", Value: strconv.Itoa(s.TeamInvitedCount), Status: boolStatus(invitesSettled)},
		{Label: "Service areas", Value: strconv.Itoa(s.ServiceAreasCount), Status: boolStatus(hasServiceArea)},
	}

	return section
}
