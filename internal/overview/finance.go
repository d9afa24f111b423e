package overview

import "strconv"

func buildFinanceSection(cfg ClusterConfig, s *Snapshot) Section {
	accountingConnected := s.AccountingIntegration != nil && s.AccountingIntegration.Connected
	hasBankAccount := s.BankAccountsCount > 0 || s.PayoutAccount != nil

	// Open-invoice backlog is judged relative to job volume, floored at 5
	// so a quiet week does not flag a healthy tenant.
	backlogLimit := s.JobsWeekCount
	if backlogLimit < 5 {
		backlogLimit = 5
	}
	collectionsHealthy := s.OpenInvoicesCount < backlogLimit

	taxesConfigured := s.TaxRatesCount > 0

	section := newSection(cfg, []signal{
		{
			label:   "Connect accounting provider",
			href:    "/settings/accounting",
			ok:      accountingConnected,
			sources: []string{"accounting_integration.provider", "accounting_integration.connected"},
		},
		{
			label:   "Add a bank account",
			href:    "/settings/payments/bank",
			ok:      hasBankAccount,
			sources: []string{"bank_accounts_count", "payout_account"},
		},
		{
			label:   "Keep collections healthy",
			href:    "/invoices?status=open",
			ok:      collectionsHealthy,
			sources: []string{"open_invoices_count", "jobs_week_count"},
		},
		{
			label:   "Configure tax rates",
			href:    "/settings/taxes",
			ok:      taxesConfigured,
			sources: []string{"tax_rates_count"},
		},
	})

	switch {
	case !accountingConnected:
		section.Summary = "Connect " + strOr(providerName(s), "an accounting provider") + " to keep your books in sync."
	case !hasBankAccount:
		section.Summary = "Add a bank account to receive payouts."
	case !collectionsHealthy:
		section.Summary = strconv.Itoa(s.OpenInvoicesCount) + " invoices are awaiting payment."
	default:
		section.Summary = "Billing, payouts and taxes are in good shape."
	}

	overdueStatus := StatusReady
	if s.OverdueInvoicesCount > 0 {
		overdueStatus = StatusWarning
	}
	if s.OverdueInvoicesCount >= backlogLimit {
		overdueStatus = StatusDanger
	}

	surcharge := 0.0
	if s.PaymentSettings != nil {
		surcharge = s.PaymentSettings.SurchargePct
	}

	section.Metrics = []Metric{
		{Label: "Open invoices", Value: strconv.Itoa(s.OpenInvoicesCount), Status: boolStatus(collectionsHealthy)},
		{Label: "Overdue invoices", Value: strconv.Itoa(s.OverdueInvoicesCount), Status: overdueStatus},
		{Label: "Last accounting sync", Value: lastSyncText(s), Status: boolStatus(accountingConnected)},
		{Label: "Card surcharge", Value: formatPercent(surcharge), Status: StatusReady},
	}

	return section
}

func providerName(s *Snapshot) *string {
	if s.AccountingIntegration == nil {
		return nil
	}
	return s.AccountingIntegration.Provider
}

func lastSyncText(s *Snapshot) string {
	if s.AccountingIntegration == nil {
		return "never"
	}
	return formatDate(s.AccountingIntegration.LastSyncedAt)
}
