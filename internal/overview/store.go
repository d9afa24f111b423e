package overview

import (
	"context"

	"github.com/opservo/fieldops/internal/db"
)

// Store is the slice of the data source the fetcher depends on. One method
// per query; every implementation must scope by company id. *db.Repository
// satisfies it.
type Store interface {
	GetCompany(ctx context.Context, companyID string) (*db.Company, error)
	GetCompanySettings(ctx context.Context, companyID string) (*db.CompanySettings, error)
	GetProfile(ctx context.Context, companyID, userID string) (*db.Profile, error)
	GetUserPreferences(ctx context.Context, companyID, userID string) (*db.UserPreferences, error)
	GetCommunicationSettings(ctx context.Context, companyID string) (*db.CommunicationSettings, error)
	GetEmailSettings(ctx context.Context, companyID string) (*db.EmailSettings, error)
	GetSMSSettings(ctx context.Context, companyID string) (*db.SMSSettings, error)
	GetPhoneSettings(ctx context.Context, companyID string) (*db.PhoneSettings, error)
	GetJobSettings(ctx context.Context, companyID string) (*db.JobSettings, error)
	GetScheduleSettings(ctx context.Context, companyID string) (*db.ScheduleSettings, error)
	GetDispatchSettings(ctx context.Context, companyID string) (*db.DispatchSettings, error)
	GetInvoiceSettings(ctx context.Context, companyID string) (*db.InvoiceSettings, error)
	GetEstimateSettings(ctx context.Context, companyID string) (*db.EstimateSettings, error)
	GetPaymentSettings(ctx context.Context, companyID string) (*db.PaymentSettings, error)
	GetTaxSettings(ctx context.Context, companyID string) (*db.TaxSettings, error)
	GetAccountingIntegration(ctx context.Context, companyID string) (*db.AccountingIntegration, error)
	GetDefaultPayoutAccount(ctx context.Context, companyID string) (*db.PayoutAccount, error)
	GetCustomerSettings(ctx context.Context, companyID string) (*db.CustomerSettings, error)
	GetIntakeFormSettings(ctx context.Context, companyID string) (*db.IntakeFormSettings, error)
	GetReviewSettings(ctx context.Context, companyID string) (*db.ReviewSettings, error)
	GetMessagingBrand(ctx context.Context, companyID string) (*db.MessagingBrand, error)
	GetLatestMessagingCampaign(ctx context.Context, companyID, brandID string) (*db.MessagingCampaign, error)

	GetTeamCounts(ctx context.Context, companyID string) (db.TeamCounts, error)
	GetWeeklyActivity(ctx context.Context, companyID string) (db.WeeklyActivity, error)
	CountAPIKeys(ctx context.Context, companyID string) (int, error)
	CountOpenInvoices(ctx context.Context, companyID string) (int, error)
	CountOverdueInvoices(ctx context.Context, companyID string) (int, error)
	CountBankAccounts(ctx context.Context, companyID string) (int, error)
	CountServiceAreas(ctx context.Context, companyID string) (int, error)
	CountTaxRates(ctx context.Context, companyID string) (int, error)
	CountNotificationFailures(ctx context.Context, companyID string) (int, error)
	CountReportSchedules(ctx context.Context, companyID string) (int, error)
	CountDashboards(ctx context.Context, companyID string) (int, error)
	CountPriceBookItems(ctx context.Context, companyID string) (int, error)
	CountCustomFields(ctx context.Context, companyID string) (int, error)
	CountTags(ctx context.Context, companyID string) (int, error)
	CountCustomers(ctx context.Context, companyID string) (int, error)
	CountLeadSources(ctx context.Context, companyID string) (int, error)
	CountAutomations(ctx context.Context, companyID string) (int, error)

	ListWebhookEndpointIDs(ctx context.Context, companyID string) ([]string, error)
	CountWebhookFailures(ctx context.Context, companyID string, endpointIDs []string) (int, error)
}
