package overview

import (
	"context"
	"sync/atomic"

	"github.com/opservo/fieldops/internal/db"
)

// fakeStore serves canned rows out of a Snapshot. err, when set, is
// returned by every method; failOn fails just one named query. fetches
// counts how many full fan-outs were triggered, for single-flight tests.
type fakeStore struct {
	data    Snapshot
	err     error
	failOn  string
	fetches atomic.Int64
}

func (f *fakeStore) fail(method string) error {
	if f.err != nil {
		return f.err
	}
	if f.failOn == method {
		return errFake
	}
	return nil
}

var errFake = &fakeError{}

type fakeError struct{}

func (*fakeError) Error() string { return "fake query failure" }

func (f *fakeStore) GetCompany(ctx context.Context, companyID string) (*db.Company, error) {
	f.fetches.Add(1)
	if err := f.fail("GetCompany"); err != nil {
		return nil, err
	}
	return f.data.Company, nil
}

func (f *fakeStore) GetCompanySettings(ctx context.Context, companyID string) (*db.CompanySettings, error) {
	if err := f.fail("GetCompanySettings"); err != nil {
		return nil, err
	}
	return f.data.CompanySettings, nil
}

func (f *fakeStore) GetProfile(ctx context.Context, companyID, userID string) (*db.Profile, error) {
	if err := f.fail("GetProfile"); err != nil {
		return nil, err
	}
	return f.data.Profile, nil
}

func (f *fakeStore) GetUserPreferences(ctx context.Context, companyID, userID string) (*db.UserPreferences, error) {
	if err := f.fail("GetUserPreferences"); err != nil {
		return nil, err
	}
	return f.data.UserPreferences, nil
}

func (f *fakeStore) GetCommunicationSettings(ctx context.Context, companyID string) (*db.CommunicationSettings, error) {
	if err := f.fail("GetCommunicationSettings"); err != nil {
		return nil, err
	}
	return f.data.CommunicationSettings, nil
}

func (f *fakeStore) GetEmailSettings(ctx context.Context, companyID string) (*db.EmailSettings, error) {
	if err := f.fail("GetEmailSettings"); err != nil {
		return nil, err
	}
	return f.data.EmailSettings, nil
}

func (f *fakeStore) GetSMSSettings(ctx context.Context, companyID string) (*db.SMSSettings, error) {
	if err := f.fail("GetSMSSettings"); err != nil {
		return nil, err
	}
	return f.data.SMSSettings, nil
}

func (f *fakeStore) GetPhoneSettings(ctx context.Context, companyID string) (*db.PhoneSettings, error) {
	if err := f.fail("GetPhoneSettings"); err != nil {
		return nil, err
	}
	return f.data.PhoneSettings, nil
}

func (f *fakeStore) GetJobSettings(ctx context.Context, companyID string) (*db.JobSettings, error) {
	if err := f.fail("GetJobSettings"); err != nil {
		return nil, err
	}
	return f.data.JobSettings, nil
}

func (f *fakeStore) GetScheduleSettings(ctx context.Context, companyID string) (*db.ScheduleSettings, error) {
	if err := f.fail("GetScheduleSettings"); err != nil {
		return nil, err
	}
	return f.data.ScheduleSettings, nil
}

func (f *fakeStore) GetDispatchSettings(ctx context.Context, companyID string) (*db.DispatchSettings, error) {
	if err := f.fail("GetDispatchSettings"); err != nil {
		return nil, err
	}
	return f.data.DispatchSettings, nil
}

func (f *fakeStore) GetInvoiceSettings(ctx context.Context, companyID string) (*db.InvoiceSettings, error) {
	if err := f.fail("GetInvoiceSettings"); err != nil {
		return nil, err
	}
	return f.data.InvoiceSettings, nil
}

func (f *fakeStore) GetEstimateSettings(ctx context.Context, companyID string) (*db.EstimateSettings, error) {
	if err := f.fail("GetEstimateSettings"); err != nil {
		return nil, err
	}
	return f.data.EstimateSettings, nil
}

func (f *fakeStore) GetPaymentSettings(ctx context.Context, companyID string) (*db.PaymentSettings, error) {
	if err := f.fail("GetPaymentSettings"); err != nil {
		return nil, err
	}
	return f.data.PaymentSettings, nil
}

func (f *fakeStore) GetTaxSettings(ctx context.Context, companyID string) (*db.TaxSettings, error) {
	if err := f.fail("GetTaxSettings"); err != nil {
		return nil, err
	}
	return f.data.TaxSettings, nil
}

func (f *fakeStore) GetAccountingIntegration(ctx context.Context, companyID string) (*db.AccountingIntegration, error) {
	if err := f.fail("GetAccountingIntegration"); err != nil {
		return nil, err
	}
	return f.data.AccountingIntegration, nil
}

func (f *fakeStore) GetDefaultPayoutAccount(ctx context.Context, companyID string) (*db.PayoutAccount, error) {
	if err := f.fail("GetDefaultPayoutAccount"); err != nil {
		return nil, err
	}
	return f.data.PayoutAccount, nil
}

func (f *fakeStore) GetCustomerSettings(ctx context.Context, companyID string) (*db.CustomerSettings, error) {
	if err := f.fail("GetCustomerSettings"); err != nil {
		return nil, err
	}
	return f.data.CustomerSettings, nil
}

func (f *fakeStore) GetIntakeFormSettings(ctx context.Context, companyID string) (*db.IntakeFormSettings, error) {
	if err := f.fail("GetIntakeFormSettings"); err != nil {
		return nil, err
	}
	return f.data.IntakeFormSettings, nil
}

func (f *fakeStore) GetReviewSettings(ctx context.Context, companyID string) (*db.ReviewSettings, error) {
	if err := f.fail("GetReviewSettings"); err != nil {
		return nil, err
	}
	return f.data.ReviewSettings, nil
}

func (f *fakeStore) GetMessagingBrand(ctx context.Context, companyID string) (*db.MessagingBrand, error) {
	if err := f.fail("GetMessagingBrand"); err != nil {
		return nil, err
	}
	return f.data.MessagingBrand, nil
}

func (f *fakeStore) GetLatestMessagingCampaign(ctx context.Context, companyID, brandID string) (*db.MessagingCampaign, error) {
	if err := f.fail("GetLatestMessagingCampaign"); err != nil {
		return nil, err
	}
	return f.data.MessagingCampaign, nil
}

func (f *fakeStore) GetTeamCounts(ctx context.Context, companyID string) (db.TeamCounts, error) {
	if err := f.fail("GetTeamCounts"); err != nil {
		return db.TeamCounts{}, err
	}
	return db.TeamCounts{Active: f.data.TeamActiveCount, Invited: f.data.TeamInvitedCount}, nil
}

func (f *fakeStore) GetWeeklyActivity(ctx context.Context, companyID string) (db.WeeklyActivity, error) {
	if err := f.fail("GetWeeklyActivity"); err != nil {
		return db.WeeklyActivity{}, err
	}
	return db.WeeklyActivity{
		Jobs:      f.data.JobsWeekCount,
		Estimates: f.data.EstimatesWeekCount,
		Payments:  f.data.PaymentsWeekCount,
		Visits:    f.data.VisitsWeekCount,
	}, nil
}

func (f *fakeStore) CountAPIKeys(ctx context.Context, companyID string) (int, error) {
	if err := f.fail("CountAPIKeys"); err != nil {
		return 0, err
	}
	return f.data.APIKeysCount, nil
}

func (f *fakeStore) CountOpenInvoices(ctx context.Context, companyID string) (int, error) {
	if err := f.fail("CountOpenInvoices"); err != nil {
		return 0, err
	}
	return f.data.OpenInvoicesCount, nil
}

func (f *fakeStore) CountOverdueInvoices(ctx context.Context, companyID string) (int, error) {
	if err := f.fail("CountOverdueInvoices"); err != nil {
		return 0, err
	}
	return f.data.OverdueInvoicesCount, nil
}

func (f *fakeStore) CountBankAccounts(ctx context.Context, companyID string) (int, error) {
	if err := f.fail("CountBankAccounts"); err != nil {
		return 0, err
	}
	return f.data.BankAccountsCount, nil
}

func (f *fakeStore) CountServiceAreas(ctx context.Context, companyID string) (int, error) {
	if err := f.fail("CountServiceAreas"); err != nil {
		return 0, err
	}
	return f.data.ServiceAreasCount, nil
}

func (f *fakeStore) CountTaxRates(ctx context.Context, companyID string) (int, error) {
	if err := f.fail("CountTaxRates"); err != nil {
		return 0, err
	}
	return f.data.TaxRatesCount, nil
}

func (f *fakeStore) CountNotificationFailures(ctx context.Context, companyID string) (int, error) {
	if err := f.fail("CountNotificationFailures"); err != nil {
		return 0, err
	}
	return f.data.NotificationFailuresCount, nil
}

func (f *fakeStore) CountReportSchedules(ctx context.Context, companyID string) (int, error) {
	if err := f.fail("CountReportSchedules"); err != nil {
		return 0, err
	}
	return f.data.ReportSchedulesCount, nil
}

func (f *fakeStore) CountDashboards(ctx context.Context, companyID string) (int, error) {
	if err := f.fail("CountDashboards"); err != nil {
		return 0, err
	}
	return f.data.DashboardsCount, nil
}

func (f *fakeStore) CountPriceBookItems(ctx context.Context, companyID string) (int, error) {
	if err := f.fail("CountPriceBookItems"); err != nil {
		return 0, err
	}
	return f.data.PriceBookItemsCount, nil
}

func (f *fakeStore) CountCustomFields(ctx context.Context, companyID string) (int, error) {
	if err := f.fail("CountCustomFields"); err != nil {
		return 0, err
	}
	return f.data.CustomFieldsCount, nil
}

func (f *fakeStore) CountTags(ctx context.Context, companyID string) (int, error) {
	if err := f.fail("CountTags"); err != nil {
		return 0, err
	}
	return f.data.TagsCount, nil
}

func (f *fakeStore) CountCustomers(ctx context.Context, companyID string) (int, error) {
	if err := f.fail("CountCustomers"); err != nil {
		return 0, err
	}
	return f.data.CustomersCount, nil
}

func (f *fakeStore) CountLeadSources(ctx context.Context, companyID string) (int, error) {
	if err := f.fail("CountLeadSources"); err != nil {
		return 0, err
	}
	return f.data.LeadSourcesCount, nil
}

func (f *fakeStore) CountAutomations(ctx context.Context, companyID string) (int, error) {
	if err := f.fail("CountAutomations"); err != nil {
		return 0, err
	}
	return f.data.AutomationsCount, nil
}

func (f *fakeStore) ListWebhookEndpointIDs(ctx context.Context, companyID string) ([]string, error) {
	if err := f.fail("ListWebhookEndpointIDs"); err != nil {
		return nil, err
	}
	return f.data.WebhookEndpointIDs, nil
}

func (f *fakeStore) CountWebhookFailures(ctx context.Context, companyID string, endpointIDs []string) (int, error) {
	if err := f.fail("CountWebhookFailures"); err != nil {
		return 0, err
	}
	return f.data.WebhookFailuresCount, nil
}
