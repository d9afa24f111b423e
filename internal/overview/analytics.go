package overview

import "strconv"

func buildAnalyticsSection(cfg ClusterConfig, s *Snapshot) Section {
	hasReports := s.ReportSchedulesCount > 0
	hasDashboards := s.DashboardsCount > 0
	weeklyTotal := s.JobsWeekCount + s.EstimatesWeekCount + s.PaymentsWeekCount
	hasActivity := weeklyTotal > 0

	section := newSection(cfg, []signal{
		{
			label:   "Schedule a recurring report",
			href:    "/settings/reports",
			ok:      hasReports,
			sources: []string{"report_schedules_count"},
		},
		{
			label:   "Create a dashboard",
			href:    "/settings/dashboards",
			ok:      hasDashboards,
			sources: []string{"dashboards_count"},
		},
		{
			label:   "Log business activity",
			href:    "/jobs",
			ok:      hasActivity,
			sources: []string{"jobs_week_count", "estimates_week_count", "payments_week_count"},
		},
	})

	switch {
	case !hasActivity:
		section.Summary = "No activity recorded this week, reports will be empty."
	case !hasReports && !hasDashboards:
		section.Summary = "Set up a report or dashboard to track your numbers."
	default:
		section.Summary = "Your reporting is tracking this week's activity."
	}

	section.Metrics = []Metric{
		{Label: "Scheduled reports", Value: strconv.Itoa(s.ReportSchedulesCount), Status: boolStatus(hasReports)},
		{Label: "Dashboards", Value: strconv.Itoa(s.DashboardsCount), Status: boolStatus(hasDashboards)},
		{Label: "Estimates this week", Value: strconv.Itoa(s.EstimatesWeekCount), Status: StatusReady},
		{Label: "Payments this week", Value: strconv.Itoa(s.PaymentsWeekCount), Status: boolStatus(hasActivity)},
	}

	return section
}
