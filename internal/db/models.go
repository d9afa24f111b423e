package db

import (
	"time"
)

// Company is the tenant row. SubscriptionStatus comes straight from the
// billing provider and is copied into the overview meta untouched.
type Company struct {
	ID                    string     `json:"id" db:"id"`
	Name                  string     `json:"name" db:"name"`
	SubscriptionStatus    string     `json:"subscription_status" db:"subscription_status"`
	LogoURL               *string    `json:"logo_url,omitempty" db:"logo_url"`
	AddressLine1          *string    `json:"address_line1,omitempty" db:"address_line1"`
	City                  *string    `json:"city,omitempty" db:"city"`
	POSystemEnabled       bool       `json:"po_system_enabled" db:"po_system_enabled"`
	POSystemLastEnabledAt *time.Time `json:"po_system_last_enabled_at,omitempty" db:"po_system_last_enabled_at"`
	CreatedAt             time.Time  `json:"created_at" db:"created_at"`
}

type CompanySettings struct {
	CompanyID          string  `json:"-" db:"company_id"`
	DefaultTimezone    *string `json:"default_timezone,omitempty" db:"default_timezone"`
	BusinessHoursSet   bool    `json:"business_hours_set" db:"business_hours_set"`
	BrandColor         *string `json:"brand_color,omitempty" db:"brand_color"`
	CustomDomain       *string `json:"custom_domain,omitempty" db:"custom_domain"`
	CustomDomainActive bool    `json:"custom_domain_active" db:"custom_domain_active"`
}

// Profile is the per-user membership row inside a company.
type Profile struct {
	UserID              string     `json:"user_id" db:"user_id"`
	CompanyID           string     `json:"-" db:"company_id"`
	FirstName           string     `json:"first_name" db:"first_name"`
	LastName            string     `json:"last_name" db:"last_name"`
	Role                string     `json:"role" db:"role"`
	OnboardingCompleted bool       `json:"onboarding_completed" db:"onboarding_completed"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
}

type UserPreferences struct {
	UserID      string  `json:"user_id" db:"user_id"`
	CompanyID   string  `json:"-" db:"company_id"`
	Timezone    *string `json:"timezone,omitempty" db:"timezone"`
	NotifyEmail bool    `json:"notify_email" db:"notify_email"`
	NotifySMS   bool    `json:"notify_sms" db:"notify_sms"`
	NotifyPush  bool    `json:"notify_push" db:"notify_push"`
}

type CommunicationSettings struct {
	CompanyID               string  `json:"-" db:"company_id"`
	DefaultReplyTo          *string `json:"default_reply_to,omitempty" db:"default_reply_to"`
	NotificationQueuePaused bool    `json:"notification_queue_paused" db:"notification_queue_paused"`
}

type EmailSettings struct {
	CompanyID      string  `json:"-" db:"company_id"`
	SenderDomain   *string `json:"sender_domain,omitempty" db:"sender_domain"`
	SenderVerified bool    `json:"sender_verified" db:"sender_verified"`
	FromName       *string `json:"from_name,omitempty" db:"from_name"`
}

type SMSSettings struct {
	CompanyID   string  `json:"-" db:"company_id"`
	Enabled     bool    `json:"enabled" db:"enabled"`
	PhoneNumber *string `json:"phone_number,omitempty" db:"phone_number"`
}

type PhoneSettings struct {
	CompanyID            string  `json:"-" db:"company_id"`
	ProvisionedNumber    *string `json:"provisioned_number,omitempty" db:"provisioned_number"`
	VoicemailGreetingSet bool    `json:"voicemail_greeting_set" db:"voicemail_greeting_set"`
}

type JobSettings struct {
	CompanyID          string `json:"-" db:"company_id"`
	JobTypesConfigured bool   `json:"job_types_configured" db:"job_types_configured"`
	DefaultDurationMin int    `json:"default_duration_min" db:"default_duration_min"`
	AutoInvoice        bool   `json:"auto_invoice" db:"auto_invoice"`
}

type ScheduleSettings struct {
	CompanyID         string  `json:"-" db:"company_id"`
	WorkingHoursSet   bool    `json:"working_hours_set" db:"working_hours_set"`
	BookingWindowDays int     `json:"booking_window_days" db:"booking_window_days"`
	Timezone          *string `json:"timezone,omitempty" db:"timezone"`
}

type DispatchSettings struct {
	CompanyID    string `json:"-" db:"company_id"`
	AutoAssign   bool   `json:"auto_assign" db:"auto_assign"`
	CrewCapacity int    `json:"crew_capacity" db:"crew_capacity"`
}

type InvoiceSettings struct {
	CompanyID       string  `json:"-" db:"company_id"`
	NetTermsDays    int     `json:"net_terms_days" db:"net_terms_days"`
	AutoReminders   bool    `json:"auto_reminders" db:"auto_reminders"`
	NumberingPrefix *string `json:"numbering_prefix,omitempty" db:"numbering_prefix"`
}

type EstimateSettings struct {
	CompanyID        string `json:"-" db:"company_id"`
	ExpiryDays       int    `json:"expiry_days" db:"expiry_days"`
	RequireSignature bool   `json:"require_signature" db:"require_signature"`
}

type PaymentSettings struct {
	CompanyID          string  `json:"-" db:"company_id"`
	Processor          *string `json:"processor,omitempty" db:"processor"`
	ProcessorConnected bool    `json:"processor_connected" db:"processor_connected"`
	SurchargePct       float64 `json:"surcharge_pct" db:"surcharge_pct"`
}

type TaxSettings struct {
	CompanyID     string  `json:"-" db:"company_id"`
	DefaultRateID *string `json:"default_rate_id,omitempty" db:"default_rate_id"`
	TaxInclusive  bool    `json:"tax_inclusive" db:"tax_inclusive"`
}

type AccountingIntegration struct {
	CompanyID    string     `json:"-" db:"company_id"`
	Provider     *string    `json:"provider,omitempty" db:"provider"`
	Connected    bool       `json:"connected" db:"connected"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty" db:"last_synced_at"`
}

type PayoutAccount struct {
	ID        string  `json:"id" db:"id"`
	CompanyID string  `json:"-" db:"company_id"`
	BankName  *string `json:"bank_name,omitempty" db:"bank_name"`
	Last4     *string `json:"last4,omitempty" db:"last4"`
	IsDefault bool    `json:"is_default" db:"is_default"`
}

type CustomerSettings struct {
	CompanyID            string `json:"-" db:"company_id"`
	PortalEnabled        bool   `json:"portal_enabled" db:"portal_enabled"`
	ReviewRequestEnabled bool   `json:"review_request_enabled" db:"review_request_enabled"`
}

type IntakeFormSettings struct {
	CompanyID   string `json:"-" db:"company_id"`
	Published   bool   `json:"published" db:"published"`
	FieldsCount int    `json:"fields_count" db:"fields_count"`
}

type ReviewSettings struct {
	CompanyID     string  `json:"-" db:"company_id"`
	AutoSend      bool    `json:"auto_send" db:"auto_send"`
	GooglePlaceID *string `json:"google_place_id,omitempty" db:"google_place_id"`
}

// MessagingBrand is the tenant's 10DLC brand registration with the SMS
// carrier network. Status strings come from the carrier verbatim.
type MessagingBrand struct {
	ID          string     `json:"id" db:"id"`
	CompanyID   string     `json:"-" db:"company_id"`
	Status      string     `json:"status" db:"status"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty" db:"submitted_at"`
}

type MessagingCampaign struct {
	ID        string    `json:"id" db:"id"`
	BrandID   string    `json:"brand_id" db:"brand_id"`
	Status    string    `json:"status" db:"status"`
	UseCase   *string   `json:"use_case,omitempty" db:"use_case"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TeamCounts is a batched aggregate over team_members.
type TeamCounts struct {
	Active  int `json:"active" db:"active"`
	Invited int `json:"invited" db:"invited"`
}

// WeeklyActivity is a batched aggregate of the tenant's last seven days.
type WeeklyActivity struct {
	Jobs      int `json:"jobs" db:"jobs"`
	Estimates int `json:"estimates" db:"estimates"`
	Payments  int `json:"payments" db:"payments"`
	Visits    int `json:"visits" db:"visits"`
}
