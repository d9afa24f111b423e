// Package domaincheck runs live diagnostics against a tenant's email
// sending domain: mail routing, sender authentication records and the
// registration itself. It backs the communications settings page.
package domaincheck

import (
	"context"
	"sync"
	"time"
)

type Checker struct {
	dns   *DNSChecker
	whois *WHOISChecker
}

func NewChecker() *Checker {
	return &Checker{
		dns:   NewDNSChecker(),
		whois: NewWHOISChecker(),
	}
}

type Analysis struct {
	Domain      string       `json:"domain"`
	Timestamp   time.Time    `json:"timestamp"`
	HealthScore int          `json:"health_score"`
	DNS         *DNSResult   `json:"dns,omitempty"`
	DNSError    *string      `json:"dns_error,omitempty"`
	WHOIS       *WHOISResult `json:"whois,omitempty"`
	WHOISError  *string      `json:"whois_error,omitempty"`
}

// Analyze runs the DNS and WHOIS checks concurrently and scores the
// result. Partial failures degrade the score instead of failing the call.
func (c *Checker) Analyze(ctx context.Context, domain string) *Analysis {
	analysis := &Analysis{
		Domain:    domain,
		Timestamp: time.Now(),
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		result, err := c.dns.Check(ctx, domain)
		analysis.DNS = result
		if err != nil {
			msg := err.Error()
			analysis.DNSError = &msg
		}
	}()

	go func() {
		defer wg.Done()
		result, err := c.whois.Check(domain)
		analysis.WHOIS = result
		if err != nil {
			msg := err.Error()
			analysis.WHOISError = &msg
		}
	}()

	wg.Wait()

	analysis.HealthScore = scoreAnalysis(analysis)
	return analysis
}

// scoreAnalysis weighs what matters for deliverability: SPF and DKIM are
// worth more than DNSSEC or a far-off expiry date.
func scoreAnalysis(a *Analysis) int {
	score := 0

	if a.DNS != nil {
		if len(a.DNS.MXRecords) > 0 {
			score += 20
		}
		if a.DNS.SPFRecord != nil {
			score += 25
		}
		if a.DNS.DKIMFound {
			score += 25
		}
		if a.DNS.DMARCRecord != nil {
			score += 15
		}
		if a.DNS.HasDNSSEC {
			score += 5
		}
	}

	if a.WHOIS != nil && a.WHOISError == nil {
		score += 10
	}

	return score
}
