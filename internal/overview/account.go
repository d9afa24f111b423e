package overview

import "strconv"

func buildAccountSection(cfg ClusterConfig, s *Snapshot) Section {
	onboarded := s.Profile != nil && s.Profile.OnboardingCompleted
	timezoneSet := s.UserPreferences != nil && strOr(s.UserPreferences.Timezone, "") != ""

	channels := 0
	if s.UserPreferences != nil {
		if s.UserPreferences.NotifyEmail {
			channels++
		}
		if s.UserPreferences.NotifySMS {
			channels++
		}
		if s.UserPreferences.NotifyPush {
			channels++
		}
	}
	notificationsOn := channels >= 2

	section := newSection(cfg, []signal{
		{
			label:   "Complete onboarding",
			href:    "/onboarding",
			ok:      onboarded,
			sources: []string{"profile.onboarding_completed"},
		},
		{
			label:   "Set your timezone",
			href:    "/settings/profile",
			ok:      timezoneSet,
			sources: []string{"user_preferences.timezone"},
		},
		{
			label:   "Enable notifications",
			href:    "/settings/notifications",
			ok:      notificationsOn,
			sources: []string{"user_preferences.notify_email", "user_preferences.notify_sms", "user_preferences.notify_push"},
		},
	})

	switch {
	case onboarded && timezoneSet && notificationsOn:
		section.Summary = "Your account is fully set up."
	case !onboarded:
		section.Summary = "Finish onboarding to personalize your workspace."
	case !timezoneSet:
		section.Summary = "Set your timezone so schedules display in local time."
	default:
		section.Summary = "Turn on at least two notification channels to stay informed."
	}

	var lastLogin Metric
	if s.Profile != nil && s.Profile.LastLoginAt != nil {
		lastLogin = Metric{Label: "Last sign-in", Value: formatDate(s.Profile.LastLoginAt), Status: StatusReady}
	} else {
		lastLogin = Metric{Label: "Last sign-in", Value: "never", Status: StatusWarning}
	}

	role := "member"
	if s.Profile != nil {
		role = strOr(&s.Profile.Role, "member")
	}

	section.Metrics = []Metric{
		lastLogin,
		{Label: "Notification channels", Value: strconv.Itoa(channels) + " of 3", Status: boolStatus(notificationsOn)},
		{Label: "Role", Value: role, Status: StatusReady},
	}

	return section
}
