package overview

import "strconv"

func buildCommunicationsSection(cfg ClusterConfig, s *Snapshot) Section {
	senderVerified := s.EmailSettings != nil && s.EmailSettings.SenderVerified

	brandStatus := classifyCarrierStatus(s.MessagingBrand != nil, brandStatusString(s))
	campaignStatus := classifyCarrierStatus(s.MessagingCampaign != nil, campaignStatusString(s))
	brandApproved := brandStatus == StatusReady
	campaignApproved := campaignStatus == StatusReady

	queueHealthy := s.NotificationFailuresCount == 0 &&
		(s.CommunicationSettings == nil || !s.CommunicationSettings.NotificationQueuePaused)

	section := newSection(cfg, []signal{
		{
			label:   "Verify email sending domain",
			href:    "/settings/communications/email",
			ok:      senderVerified,
			sources: []string{"email_settings.sender_domain", "email_settings.sender_verified"},
		},
		{
			label:   "Register messaging brand",
			href:    "/settings/communications/sms",
			ok:      brandApproved,
			sources: []string{"messaging_brand.status"},
		},
		{
			label:   "Approve messaging campaign",
			href:    "/settings/communications/sms",
			ok:      campaignApproved,
			sources: []string{"messaging_campaign.status"},
		},
		{
			label:   "Keep notification queue healthy",
			href:    "/settings/notifications/queue",
			ok:      queueHealthy,
			sources: []string{"notification_failures_count", "communication_settings.notification_queue_paused"},
		},
	})

	switch {
	case s.MessagingBrand == nil:
		section.Summary = "Finish 10DLC registration to start texting customers."
	case !campaignApproved:
		section.Summary = "Your messaging campaign is still under carrier review."
	case s.NotificationFailuresCount > 0:
		section.Summary = strconv.Itoa(s.NotificationFailuresCount) + " notifications failed to send this week."
	case !senderVerified:
		section.Summary = "Verify your sending domain to improve email deliverability."
	default:
		section.Summary = "All customer messaging channels are operational."
	}

	failStatus := StatusReady
	if s.NotificationFailuresCount > 0 {
		failStatus = StatusWarning
	}
	if s.NotificationFailuresCount >= 25 {
		failStatus = StatusDanger
	}

	section.Metrics = []Metric{
		{Label: "Brand registration", Value: brandStatusText(s), Status: brandStatus},
		{Label: "Campaign", Value: campaignStatusText(s), Status: campaignStatus},
		{Label: "Failed notifications (7d)", Value: strconv.Itoa(s.NotificationFailuresCount), Status: failStatus},
	}

	return section
}

func brandStatusString(s *Snapshot) string {
	if s.MessagingBrand == nil {
		return ""
	}
	return s.MessagingBrand.Status
}

func campaignStatusString(s *Snapshot) string {
	if s.MessagingCampaign == nil {
		return ""
	}
	return s.MessagingCampaign.Status
}

func brandStatusText(s *Snapshot) string {
	if s.MessagingBrand == nil {
		return "not registered"
	}
	return strOr(&s.MessagingBrand.Status, "unknown")
}

func campaignStatusText(s *Snapshot) string {
	if s.MessagingCampaign == nil {
		return "not submitted"
	}
	return strOr(&s.MessagingCampaign.Status, "unknown")
}
