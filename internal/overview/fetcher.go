package overview

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultFetchTimeout = 5 * time.Second
	defaultFanoutLimit  = 16
)

// Recorder receives aggregation telemetry at the error-swallow points and
// after every successful assembly.
type Recorder interface {
	ObserveFetch(companyID string, d time.Duration, failed bool)
	RecordSectionProgress(companyID string, cluster string, progress int)
}

type noopRecorder struct{}

func (noopRecorder) ObserveFetch(string, time.Duration, bool)  {}
func (noopRecorder) RecordSectionProgress(string, string, int) {}

// Fetcher issues the overview fan-out against the Store. The fetch is
// all-or-nothing: any query error discards every partial result and the
// caller gets the default snapshot instead. Fetch never returns an error.
type Fetcher struct {
	store    Store
	logger   *zap.Logger
	recorder Recorder
	timeout  time.Duration
	fanout   int
}

func NewFetcher(store Store, logger *zap.Logger, recorder Recorder, timeout time.Duration, fanout int) *Fetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	if fanout <= 0 {
		fanout = defaultFanoutLimit
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Fetcher{
		store:    store,
		logger:   logger,
		recorder: recorder,
		timeout:  timeout,
		fanout:   fanout,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, companyID, userID string) *Snapshot {
	now := time.Now()
	start := now

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	snap := &Snapshot{
		WebhookEndpointIDs: []string{},
		GeneratedAt:        now,
	}

	if err := f.fetchIndependent(ctx, snap, companyID, userID); err != nil {
		f.logger.Error("overview fetch failed, serving defaults",
			zap.String("company_id", companyID),
			zap.String("phase", "independent"),
			zap.Error(err),
		)
		f.recorder.ObserveFetch(companyID, time.Since(start), true)
		return DefaultSnapshot(now)
	}

	if err := f.fetchDependent(ctx, snap, companyID); err != nil {
		f.logger.Error("overview fetch failed, serving defaults",
			zap.String("company_id", companyID),
			zap.String("phase", "dependent"),
			zap.Error(err),
		)
		f.recorder.ObserveFetch(companyID, time.Since(start), true)
		return DefaultSnapshot(now)
	}

	f.recorder.ObserveFetch(companyID, time.Since(start), false)
	return snap
}

// fetchIndependent is phase one: every settings row, count and the brand
// lookup, fired concurrently under a shared deadline. Each goroutine
// writes a distinct snapshot field; errgroup.Wait orders those writes
// before the caller reads them.
func (f *Fetcher) fetchIndependent(ctx context.Context, snap *Snapshot, companyID, userID string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.fanout)

	g.Go(func() (err error) { snap.Company, err = f.store.GetCompany(ctx, companyID); return })
	g.Go(func() (err error) { snap.CompanySettings, err = f.store.GetCompanySettings(ctx, companyID); return })
	g.Go(func() (err error) { snap.Profile, err = f.store.GetProfile(ctx, companyID, userID); return })
	g.Go(func() (err error) { snap.UserPreferences, err = f.store.GetUserPreferences(ctx, companyID, userID); return })
	g.Go(func() (err error) {
		snap.CommunicationSettings, err = f.store.GetCommunicationSettings(ctx, companyID)
		return
	})
	g.Go(func() (err error) { snap.EmailSettings, err = f.store.GetEmailSettings(ctx, companyID); return })
	g.Go(func() (err error) { snap.SMSSettings, err = f.store.GetSMSSettings(ctx, companyID); return })
	g.Go(func() (err error) { snap.PhoneSettings, err = f.store.GetPhoneSettings(ctx, companyID); return })
	g.Go(func() (err error) { snap.JobSettings, err = f.store.GetJobSettings(ctx, companyID); return })
	g.Go(func() (err error) { snap.ScheduleSettings, err = f.store.GetScheduleSettings(ctx, companyID); return })
	g.Go(func() (err error) { snap.DispatchSettings, err = f.store.GetDispatchSettings(ctx, companyID); return })
	g.Go(func() (err error) { snap.InvoiceSettings, err = f.store.GetInvoiceSettings(ctx, companyID); return })
	g.Go(func() (err error) { snap.EstimateSettings, err = f.store.GetEstimateSettings(ctx, companyID); return })
	g.Go(func() (err error) { snap.PaymentSettings, err = f.store.GetPaymentSettings(ctx, companyID); return })
	g.Go(func() (err error) { snap.TaxSettings, err = f.store.GetTaxSettings(ctx, companyID); return })
	g.Go(func() (err error) {
		snap.AccountingIntegration, err = f.store.GetAccountingIntegration(ctx, companyID)
		return
	})
	g.Go(func() (err error) { snap.PayoutAccount, err = f.store.GetDefaultPayoutAccount(ctx, companyID); return })
	g.Go(func() (err error) { snap.CustomerSettings, err = f.store.GetCustomerSettings(ctx, companyID); return })
	g.Go(func() (err error) { snap.IntakeFormSettings, err = f.store.GetIntakeFormSettings(ctx, companyID); return })
	g.Go(func() (err error) { snap.ReviewSettings, err = f.store.GetReviewSettings(ctx, companyID); return })
	g.Go(func() (err error) { snap.MessagingBrand, err = f.store.GetMessagingBrand(ctx, companyID); return })

	g.Go(func() error {
		counts, err := f.store.GetTeamCounts(ctx, companyID)
		if err != nil {
			return err
		}
		snap.TeamActiveCount = counts.Active
		snap.TeamInvitedCount = counts.Invited
		return nil
	})
	g.Go(func() error {
		activity, err := f.store.GetWeeklyActivity(ctx, companyID)
		if err != nil {
			return err
		}
		snap.JobsWeekCount = activity.Jobs
		snap.EstimatesWeekCount = activity.Estimates
		snap.PaymentsWeekCount = activity.Payments
		snap.VisitsWeekCount = activity.Visits
		return nil
	})

	g.Go(func() (err error) { snap.APIKeysCount, err = f.store.CountAPIKeys(ctx, companyID); return })
	g.Go(func() (err error) { snap.OpenInvoicesCount, err = f.store.CountOpenInvoices(ctx, companyID); return })
	g.Go(func() (err error) { snap.OverdueInvoicesCount, err = f.store.CountOverdueInvoices(ctx, companyID); return })
	g.Go(func() (err error) { snap.BankAccountsCount, err = f.store.CountBankAccounts(ctx, companyID); return })
	g.Go(func() (err error) { snap.ServiceAreasCount, err = f.store.CountServiceAreas(ctx, companyID); return })
	g.Go(func() (err error) { snap.TaxRatesCount, err = f.store.CountTaxRates(ctx, companyID); return })
	g.Go(func() (err error) {
		snap.NotificationFailuresCount, err = f.store.CountNotificationFailures(ctx, companyID)
		return
	})
	g.Go(func() (err error) { snap.ReportSchedulesCount, err = f.store.CountReportSchedules(ctx, companyID); return })
	g.Go(func() (err error) { snap.DashboardsCount, err = f.store.CountDashboards(ctx, companyID); return })
	g.Go(func() (err error) { snap.PriceBookItemsCount, err = f.store.CountPriceBookItems(ctx, companyID); return })
	g.Go(func() (err error) { snap.CustomFieldsCount, err = f.store.CountCustomFields(ctx, companyID); return })
	g.Go(func() (err error) { snap.TagsCount, err = f.store.CountTags(ctx, companyID); return })
	g.Go(func() (err error) { snap.CustomersCount, err = f.store.CountCustomers(ctx, companyID); return })
	g.Go(func() (err error) { snap.LeadSourcesCount, err = f.store.CountLeadSources(ctx, companyID); return })
	g.Go(func() (err error) { snap.AutomationsCount, err = f.store.CountAutomations(ctx, companyID); return })

	g.Go(func() error {
		ids, err := f.store.ListWebhookEndpointIDs(ctx, companyID)
		if err != nil {
			return err
		}
		if ids == nil {
			ids = []string{}
		}
		snap.WebhookEndpointIDs = ids
		return nil
	})

	return g.Wait()
}

// fetchDependent is phase two: lookups keyed by phase-one results. The
// campaign query only runs when a brand exists, the webhook-failure count
// only when endpoints exist.
func (f *Fetcher) fetchDependent(ctx context.Context, snap *Snapshot, companyID string) error {
	g, ctx := errgroup.WithContext(ctx)

	if snap.MessagingBrand != nil {
		brandID := snap.MessagingBrand.ID
		g.Go(func() (err error) {
			snap.MessagingCampaign, err = f.store.GetLatestMessagingCampaign(ctx, companyID, brandID)
			return
		})
	}

	if len(snap.WebhookEndpointIDs) > 0 {
		ids := snap.WebhookEndpointIDs
		g.Go(func() (err error) {
			snap.WebhookFailuresCount, err = f.store.CountWebhookFailures(ctx, companyID, ids)
			return
		})
	}

	return g.Wait()
}
