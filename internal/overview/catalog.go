package overview

// ClusterConfig is the static, display-only configuration for one settings
// cluster. It never depends on tenant data; builders combine it with a
// snapshot to produce a Section.
type ClusterConfig struct {
	ID           ClusterID
	Title        string
	Description  string
	Icon         string
	Links        []Link
	QuickActions []QuickAction
}

var clusterCatalog = map[ClusterID]ClusterConfig{
	ClusterAccount: {
		ID:          ClusterAccount,
		Title:       "Account",
		Description: "Your profile, notifications and sign-in preferences",
		Icon:        "user",
		Links: []Link{
			{Label: "Profile", Href: "/settings/profile"},
			{Label: "Notifications", Href: "/settings/notifications"},
		},
		QuickActions: []QuickAction{
			{Label: "Edit profile", Href: "/settings/profile", Variant: "default"},
			{Label: "Notification preferences", Href: "/settings/notifications", Variant: "outline"},
		},
	},
	ClusterWorkspace: {
		ID:          ClusterWorkspace,
		Title:       "Workspace",
		Description: "Company profile, team and service coverage",
		Icon:        "building",
		Links: []Link{
			{Label: "Company profile", Href: "/settings/company"},
			{Label: "Team", Href: "/settings/team"},
			{Label: "Service areas", Href: "/settings/service-areas"},
		},
		QuickActions: []QuickAction{
			{Label: "Invite teammate", Href: "/settings/team/invite", Variant: "default"},
			{Label: "Edit company profile", Href: "/settings/company", Variant: "outline"},
		},
	},
	ClusterCommunications: {
		ID:          ClusterCommunications,
		Title:       "Communications",
		Description: "Email, SMS and phone channels for customer messaging",
		Icon:        "message-circle",
		Links: []Link{
			{Label: "Email", Href: "/settings/communications/email"},
			{Label: "Text messaging", Href: "/settings/communications/sms"},
			{Label: "Phone", Href: "/settings/communications/phone"},
		},
		QuickActions: []QuickAction{
			{Label: "Verify sending domain", Href: "/settings/communications/email", Variant: "default"},
			{Label: "Register for texting", Href: "/settings/communications/sms", Variant: "outline"},
		},
	},
	ClusterOperations: {
		ID:          ClusterOperations,
		Title:       "Operations",
		Description: "Jobs, scheduling, dispatch and customer intake",
		Icon:        "calendar",
		Links: []Link{
			{Label: "Job settings", Href: "/settings/jobs"},
			{Label: "Scheduling", Href: "/settings/scheduling"},
			{Label: "Online booking", Href: "/settings/booking"},
		},
		QuickActions: []QuickAction{
			{Label: "Configure job types", Href: "/settings/jobs", Variant: "default"},
			{Label: "Set working hours", Href: "/settings/scheduling", Variant: "outline"},
			{Label: "Publish booking form", Href: "/settings/booking", Variant: "outline"},
		},
	},
	ClusterFinance: {
		ID:          ClusterFinance,
		Title:       "Finance",
		Description: "Invoicing, payments, taxes and accounting sync",
		Icon:        "dollar-sign",
		Links: []Link{
			{Label: "Invoices", Href: "/settings/invoices"},
			{Label: "Payments", Href: "/settings/payments"},
			{Label: "Taxes", Href: "/settings/taxes"},
			{Label: "Accounting", Href: "/settings/accounting"},
		},
		QuickActions: []QuickAction{
			{Label: "Connect accounting", Href: "/settings/accounting", Variant: "default"},
			{Label: "Add bank account", Href: "/settings/payments/bank", Variant: "outline"},
		},
	},
	ClusterIntegrations: {
		ID:          ClusterIntegrations,
		Title:       "Integrations",
		Description: "API keys, webhooks and connected apps",
		Icon:        "plug",
		Links: []Link{
			{Label: "API keys", Href: "/settings/api-keys"},
			{Label: "Webhooks", Href: "/settings/webhooks"},
		},
		QuickActions: []QuickAction{
			{Label: "Create API key", Href: "/settings/api-keys/new", Variant: "default"},
			{Label: "Add webhook", Href: "/settings/webhooks/new", Variant: "outline"},
		},
	},
	ClusterAnalytics: {
		ID:          ClusterAnalytics,
		Title:       "Analytics",
		Description: "Reports, dashboards and business activity",
		Icon:        "bar-chart",
		Links: []Link{
			{Label: "Reports", Href: "/settings/reports"},
			{Label: "Dashboards", Href: "/settings/dashboards"},
		},
		QuickActions: []QuickAction{
			{Label: "Schedule a report", Href: "/settings/reports/schedule", Variant: "default"},
		},
	},
}

// Catalog returns the static config for a cluster.
func Catalog(id ClusterID) ClusterConfig {
	return clusterCatalog[id]
}
