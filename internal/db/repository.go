package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Repository struct {
	db *sqlx.DB
}

func NewConnection(databaseURL string, maxConns, maxIdle int) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Ping() error {
	return r.db.Ping()
}

// getRow maps sql.ErrNoRows to a nil row. A missing settings row is a
// normal state for a young tenant, not a failure.
func getRow[T any](ctx context.Context, db *sqlx.DB, query string, args ...interface{}) (*T, error) {
	var row T
	err := db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, query, args...)
	return n, err
}

// Tenant rows

func (r *Repository) GetCompany(ctx context.Context, companyID string) (*Company, error) {
	query := `
        SELECT id, name, subscription_status, logo_url, address_line1, city,
               po_system_enabled, po_system_last_enabled_at, created_at
        FROM companies WHERE id = $1`
	return getRow[Company](ctx, r.db, query, companyID)
}

func (r *Repository) GetCompanySettings(ctx context.Context, companyID string) (*CompanySettings, error) {
	query := `
        SELECT company_id, default_timezone, business_hours_set, brand_color,
               custom_domain, custom_domain_active
        FROM company_settings WHERE company_id = $1`
	return getRow[CompanySettings](ctx, r.db, query, companyID)
}

func (r *Repository) GetProfile(ctx context.Context, companyID, userID string) (*Profile, error) {
	query := `
        SELECT user_id, company_id, first_name, last_name, role,
               onboarding_completed, last_login_at
        FROM profiles WHERE company_id = $1 AND user_id = $2`
	return getRow[Profile](ctx, r.db, query, companyID, userID)
}

func (r *Repository) GetUserPreferences(ctx context.Context, companyID, userID string) (*UserPreferences, error) {
	query := `
        SELECT user_id, company_id, timezone, notify_email, notify_sms, notify_push
        FROM user_preferences WHERE company_id = $1 AND user_id = $2`
	return getRow[UserPreferences](ctx, r.db, query, companyID, userID)
}

// Per-domain settings rows

func (r *Repository) GetCommunicationSettings(ctx context.Context, companyID string) (*CommunicationSettings, error) {
	query := `
        SELECT company_id, default_reply_to, notification_queue_paused
        FROM communication_settings WHERE company_id = $1`
	return getRow[CommunicationSettings](ctx, r.db, query, companyID)
}

func (r *Repository) GetEmailSettings(ctx context.Context, companyID string) (*EmailSettings, error) {
	query := `
        SELECT company_id, sender_domain, sender_verified, from_name
        FROM email_settings WHERE company_id = $1`
	return getRow[EmailSettings](ctx, r.db, query, companyID)
}

func (r *Repository) GetSMSSettings(ctx context.Context, companyID string) (*SMSSettings, error) {
	query := `
        SELECT company_id, enabled, phone_number
        FROM sms_settings WHERE company_id = $1`
	return getRow[SMSSettings](ctx, r.db, query, companyID)
}

func (r *Repository) GetPhoneSettings(ctx context.Context, companyID string) (*PhoneSettings, error) {
	query := `
        SELECT company_id, provisioned_number, voicemail_greeting_set
        FROM phone_settings WHERE company_id = $1`
	return getRow[PhoneSettings](ctx, r.db, query, companyID)
}

func (r *Repository) GetJobSettings(ctx context.Context, companyID string) (*JobSettings, error) {
	query := `
        SELECT company_id, job_types_configured, default_duration_min, auto_invoice
        FROM job_settings WHERE company_id = $1`
	return getRow[JobSettings](ctx, r.db, query, companyID)
}

func (r *Repository) GetScheduleSettings(ctx context.Context, companyID string) (*ScheduleSettings, error) {
	query := `
        SELECT company_id, working_hours_set, booking_window_days, timezone
        FROM schedule_settings WHERE company_id = $1`
	return getRow[ScheduleSettings](ctx, r.db, query, companyID)
}

func (r *Repository) GetDispatchSettings(ctx context.Context, companyID string) (*DispatchSettings, error) {
	query := `
        SELECT company_id, auto_assign, crew_capacity
        FROM dispatch_settings WHERE company_id = $1`
	return getRow[DispatchSettings](ctx, r.db, query, companyID)
}

func (r *Repository) GetInvoiceSettings(ctx context.Context, companyID string) (*InvoiceSettings, error) {
	query := `
        SELECT company_id, net_terms_days, auto_reminders, numbering_prefix
        FROM invoice_settings WHERE company_id = $1`
	return getRow[InvoiceSettings](ctx, r.db, query, companyID)
}

func (r *Repository) GetEstimateSettings(ctx context.Context, companyID string) (*EstimateSettings, error) {
	query := `
        SELECT company_id, expiry_days, require_signature
        FROM estimate_settings WHERE company_id = $1`
	return getRow[EstimateSettings](ctx, r.db, query, companyID)
}

func (r *Repository) GetPaymentSettings(ctx context.Context, companyID string) (*PaymentSettings, error) {
	query := `
        SELECT company_id, processor, processor_connected, surcharge_pct
        FROM payment_settings WHERE company_id = $1`
	return getRow[PaymentSettings](ctx, r.db, query, companyID)
}

func (r *Repository) GetTaxSettings(ctx context.Context, companyID string) (*TaxSettings, error) {
	query := `
        SELECT company_id, default_rate_id, tax_inclusive
        FROM tax_settings WHERE company_id = $1`
	return getRow[TaxSettings](ctx, r.db, query, companyID)
}

func (r *Repository) GetAccountingIntegration(ctx context.Context, companyID string) (*AccountingIntegration, error) {
	query := `
        SELECT company_id, provider, connected, last_synced_at
        FROM accounting_integrations WHERE company_id = $1`
	return getRow[AccountingIntegration](ctx, r.db, query, companyID)
}

func (r *Repository) GetDefaultPayoutAccount(ctx context.Context, companyID string) (*PayoutAccount, error) {
	query := `
        SELECT id, company_id, bank_name, last4, is_default
        FROM payout_accounts
        WHERE company_id = $1
        ORDER BY is_default DESC, created_at DESC
        LIMIT 1`
	return getRow[PayoutAccount](ctx, r.db, query, companyID)
}

func (r *Repository) GetCustomerSettings(ctx context.Context, companyID string) (*CustomerSettings, error) {
	query := `
        SELECT company_id, portal_enabled, review_request_enabled
        FROM customer_settings WHERE company_id = $1`
	return getRow[CustomerSettings](ctx, r.db, query, companyID)
}

func (r *Repository) GetIntakeFormSettings(ctx context.Context, companyID string) (*IntakeFormSettings, error) {
	query := `
        SELECT company_id, published, fields_count
        FROM intake_form_settings WHERE company_id = $1`
	return getRow[IntakeFormSettings](ctx, r.db, query, companyID)
}

func (r *Repository) GetReviewSettings(ctx context.Context, companyID string) (*ReviewSettings, error) {
	query := `
        SELECT company_id, auto_send, google_place_id
        FROM review_settings WHERE company_id = $1`
	return getRow[ReviewSettings](ctx, r.db, query, companyID)
}

// Messaging (10DLC)

func (r *Repository) GetMessagingBrand(ctx context.Context, companyID string) (*MessagingBrand, error) {
	query := `
        SELECT id, company_id, status, submitted_at
        FROM messaging_brands WHERE company_id = $1`
	return getRow[MessagingBrand](ctx, r.db, query, companyID)
}

func (r *Repository) GetLatestMessagingCampaign(ctx context.Context, companyID, brandID string) (*MessagingCampaign, error) {
	query := `
        SELECT c.id, c.brand_id, c.status, c.use_case, c.created_at
        FROM messaging_campaigns c
        JOIN messaging_brands b ON c.brand_id = b.id
        WHERE b.company_id = $1 AND c.brand_id = $2
        ORDER BY c.created_at DESC
        LIMIT 1`
	return getRow[MessagingCampaign](ctx, r.db, query, companyID, brandID)
}

// Batched aggregates

func (r *Repository) GetTeamCounts(ctx context.Context, companyID string) (TeamCounts, error) {
	var counts TeamCounts
	query := `
        SELECT COUNT(*) FILTER (WHERE status = 'active')  AS active,
               COUNT(*) FILTER (WHERE status = 'invited') AS invited
        FROM team_members WHERE company_id = $1`
	err := r.db.GetContext(ctx, &counts, query, companyID)
	return counts, err
}

func (r *Repository) GetWeeklyActivity(ctx context.Context, companyID string) (WeeklyActivity, error) {
	var activity WeeklyActivity
	query := `
        SELECT
            (SELECT COUNT(*) FROM jobs      WHERE company_id = $1 AND created_at > NOW() - INTERVAL '7 days') AS jobs,
            (SELECT COUNT(*) FROM estimates WHERE company_id = $1 AND created_at > NOW() - INTERVAL '7 days') AS estimates,
            (SELECT COUNT(*) FROM payments  WHERE company_id = $1 AND created_at > NOW() - INTERVAL '7 days') AS payments,
            (SELECT COUNT(*) FROM visits    WHERE company_id = $1 AND created_at > NOW() - INTERVAL '7 days') AS visits`
	err := r.db.GetContext(ctx, &activity, query, companyID)
	return activity, err
}

// Scalar counts

func (r *Repository) CountAPIKeys(ctx context.Context, companyID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM api_keys WHERE company_id = $1 AND revoked_at IS NULL`, companyID)
}

func (r *Repository) CountOpenInvoices(ctx context.Context, companyID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM invoices WHERE company_id = $1 AND status = 'open'`, companyID)
}

func (r *Repository) CountOverdueInvoices(ctx context.Context, companyID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM invoices WHERE company_id = $1 AND status = 'open' AND due_at < NOW()`, companyID)
}

func (r *Repository) CountBankAccounts(ctx context.Context, companyID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM payout_accounts WHERE company_id = $1`, companyID)
}

func (r *Repository) CountServiceAreas(ctx context.Context, companyID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM service_areas WHERE company_id = $1`, companyID)
}

func (r *Repository) CountTaxRates(ctx context.Context, companyID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM tax_rates WHERE company_id = $1 AND archived_at IS NULL`, companyID)
}

func (r *Repository) CountNotificationFailures(ctx context.Context, companyID string) (int, error) {
	return r.count(ctx, `
        SELECT COUNT(*) FROM notification_queue
        WHERE company_id = $1 AND status = 'failed' AND created_at > NOW() - INTERVAL '7 days'`, companyID)
}

func (r *Repository) CountReportSchedules(ctx context.Context, companyID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM report_schedules WHERE company_id = $1 AND enabled = true`, companyID)
}

func (r *Repository) CountDashboards(ctx context.Context, companyID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM dashboards WHERE company_id = $1`, companyID)
}

func (r *Repository) CountPriceBookItems(ctx context.Context, companyID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM price_book_items WHERE company_id = $1 AND archived_at IS NULL`, companyID)
}

func (r *Repository) CountCustomFields(ctx context.Context, companyID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM custom_fields WHERE company_id = $1`, companyID)
}

func (r *Repository) CountTags(ctx context.Context, companyID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM tags WHERE company_id = $1`, companyID)
}

func (r *Repository) CountCustomers(ctx context.Context, companyID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM customers WHERE company_id = $1`, companyID)
}

func (r *Repository) CountLeadSources(ctx context.Context, companyID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM lead_sources WHERE company_id = $1`, companyID)
}

func (r *Repository) CountAutomations(ctx context.Context, companyID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM automations WHERE company_id = $1 AND enabled = true`, companyID)
}

// Webhooks. The failure count is keyed by the endpoint ids fetched in the
// same aggregation pass.

func (r *Repository) ListWebhookEndpointIDs(ctx context.Context, companyID string) ([]string, error) {
	ids := []string{}
	query := `SELECT id FROM webhook_endpoints WHERE company_id = $1 AND disabled_at IS NULL`
	err := r.db.SelectContext(ctx, &ids, query, companyID)
	return ids, err
}

func (r *Repository) CountWebhookFailures(ctx context.Context, companyID string, endpointIDs []string) (int, error) {
	if len(endpointIDs) == 0 {
		return 0, nil
	}
	return r.count(ctx, `
        SELECT COUNT(*) FROM webhook_deliveries
        WHERE company_id = $1 AND endpoint_id = ANY($2)
        AND status = 'failed' AND created_at > NOW() - INTERVAL '24 hours'`,
		companyID, pq.Array(endpointIDs))
}
