package overview

import "strconv"

func buildOperationsSection(cfg ClusterConfig, s *Snapshot) Section {
	jobTypesSet := s.JobSettings != nil && s.JobSettings.JobTypesConfigured
	schedulingSet := s.ScheduleSettings != nil &&
		s.ScheduleSettings.WorkingHoursSet &&
		s.ScheduleSettings.BookingWindowDays > 0
	autoAssign := s.DispatchSettings != nil && s.DispatchSettings.AutoAssign
	intakePublished := s.IntakeFormSettings != nil && s.IntakeFormSettings.Published

	section := newSection(cfg, []signal{
		{
			label:   "Configure job types",
			href:    "/settings/jobs",
			ok:      jobTypesSet,
			sources: []string{"job_settings.job_types_configured"},
		},
		{
			label:   "Set scheduling window",
			href:    "/settings/scheduling",
			ok:      schedulingSet,
			sources: []string{"schedule_settings.working_hours_set", "schedule_settings.booking_window_days"},
		},
		{
			label:   "Enable auto-assignment",
			href:    "/settings/dispatch",
			ok:      autoAssign,
			sources: []string{"dispatch_settings.auto_assign"},
		},
		{
			label:   "Publish intake form",
			href:    "/settings/booking",
			ok:      intakePublished,
			sources: []string{"intake_form_settings.published"},
		},
	})

	// Jobs per active tech, floored so an empty roster never divides by zero.
	techs := s.TeamActiveCount
	if techs < 1 {
		techs = 1
	}
	jobsPerTech := float64(s.JobsWeekCount) / float64(techs)

	switch {
	case !jobTypesSet:
		section.Summary = "Configure job types before your crew can log work."
	case !schedulingSet:
		section.Summary = "Set working hours and a booking window to accept appointments."
	case !intakePublished:
		section.Summary = "Publish your intake form so customers can request service online."
	default:
		section.Summary = "Scheduling and dispatch are fully configured."
	}

	loadStatus := StatusReady
	if jobsPerTech > 25 {
		loadStatus = StatusWarning
	}

	section.Metrics = []Metric{
		{Label: "Jobs this week", Value: strconv.Itoa(s.JobsWeekCount), Status: loadStatus},
		{Label: "Visits this week", Value: strconv.Itoa(s.VisitsWeekCount), Status: StatusReady},
		{Label: "Booking window", Value: bookingWindowText(s), Status: boolStatus(schedulingSet)},
	}

	return section
}

func bookingWindowText(s *Snapshot) string {
	if s.ScheduleSettings == nil || s.ScheduleSettings.BookingWindowDays <= 0 {
		return "not set"
	}
	return strconv.Itoa(s.ScheduleSettings.BookingWindowDays) + " days"
}
