package overview

import (
	"time"

	"github.com/opservo/fieldops/internal/db"
)

// Snapshot is the flat raw-data record produced by one aggregation fetch.
// Nil rows and zero counts are normal states, every field has a usable
// default. Builders only read from it.
type Snapshot struct {
	Company               *db.Company
	CompanySettings       *db.CompanySettings
	Profile               *db.Profile
	UserPreferences       *db.UserPreferences
	CommunicationSettings *db.CommunicationSettings
	EmailSettings         *db.EmailSettings
	SMSSettings           *db.SMSSettings
	PhoneSettings         *db.PhoneSettings
	JobSettings           *db.JobSettings
	ScheduleSettings      *db.ScheduleSettings
	DispatchSettings      *db.DispatchSettings
	InvoiceSettings       *db.InvoiceSettings
	EstimateSettings      *db.EstimateSettings
	PaymentSettings       *db.PaymentSettings
	TaxSettings           *db.TaxSettings
	AccountingIntegration *db.AccountingIntegration
	PayoutAccount         *db.PayoutAccount
	CustomerSettings      *db.CustomerSettings
	IntakeFormSettings    *db.IntakeFormSettings
	ReviewSettings        *db.ReviewSettings
	MessagingBrand        *db.MessagingBrand
	MessagingCampaign     *db.MessagingCampaign

	TeamActiveCount           int
	TeamInvitedCount          int
	JobsWeekCount             int
	EstimatesWeekCount        int
	PaymentsWeekCount         int
	VisitsWeekCount           int
	APIKeysCount              int
	OpenInvoicesCount         int
	OverdueInvoicesCount      int
	BankAccountsCount         int
	ServiceAreasCount         int
	TaxRatesCount             int
	NotificationFailuresCount int
	ReportSchedulesCount      int
	DashboardsCount           int
	PriceBookItemsCount       int
	CustomFieldsCount         int
	TagsCount                 int
	CustomersCount            int
	LeadSourcesCount          int
	AutomationsCount          int

	WebhookEndpointIDs   []string
	WebhookFailuresCount int

	GeneratedAt time.Time
}

// DefaultSnapshot is the canonical all-default value used whenever the
// fetch fails or no data source is available. Only GeneratedAt varies.
func DefaultSnapshot(now time.Time) *Snapshot {
	return &Snapshot{
		WebhookEndpointIDs: []string{},
		GeneratedAt:        now,
	}
}
