package domaincheck

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
)

// DNSResult is what the sending domain's zone currently answers.
type DNSResult struct {
	MXRecords    []MXRecord `json:"mx_records"`
	SPFRecord    *string    `json:"spf_record,omitempty"`
	DKIMFound    bool       `json:"dkim_found"`
	DMARCRecord  *string    `json:"dmarc_record,omitempty"`
	HasDNSSEC    bool       `json:"has_dnssec"`
	ResponseTime float64    `json:"response_time_ms"`
}

type MXRecord struct {
	Priority int    `json:"priority"`
	Host     string `json:"host"`
}

type DNSChecker struct {
	resolver *net.Resolver
	client   *dns.Client
	// DKIM selectors commonly used by the email providers we provision.
	dkimSelectors []string
}

func NewDNSChecker() *DNSChecker {
	return &DNSChecker{
		resolver: &net.Resolver{
			PreferGo: true,
			Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
				d := net.Dialer{Timeout: 5 * time.Second}
				return d.DialContext(ctx, network, address)
			},
		},
		client:        &dns.Client{Timeout: 5 * time.Second},
		dkimSelectors: []string{"fieldops", "default", "k1"},
	}
}

// Check inspects the sending domain's MX, SPF, DKIM and DMARC records.
func (d *DNSChecker) Check(ctx context.Context, domain string) (*DNSResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result := &DNSResult{
		MXRecords: []MXRecord{},
	}

	startTime := time.Now()

	mxRecords, err := d.resolver.LookupMX(ctx, domain)
	if err == nil {
		for _, mx := range mxRecords {
			result.MXRecords = append(result.MXRecords, MXRecord{
				Priority: int(mx.Pref),
				Host:     strings.TrimSuffix(mx.Host, "."),
			})
		}
	}

	txtRecords, err := d.resolver.LookupTXT(ctx, domain)
	if err == nil {
		for _, txt := range txtRecords {
			if strings.HasPrefix(txt, "v=spf1") {
				spf := txt
				result.SPFRecord = &spf
				break
			}
		}
	}

	for _, selector := range d.dkimSelectors {
		records, err := d.resolver.LookupTXT(ctx, selector+"._domainkey."+domain)
		if err == nil && len(records) > 0 {
			result.DKIMFound = true
			break
		}
	}

	dmarcRecords, err := d.resolver.LookupTXT(ctx, "_dmarc."+domain)
	if err == nil {
		for _, txt := range dmarcRecords {
			if strings.HasPrefix(txt, "v=DMARC1") {
				dmarc := txt
				result.DMARCRecord = &dmarc
				break
			}
		}
	}

	result.HasDNSSEC = d.checkDNSSEC(domain)
	result.ResponseTime = float64(time.Since(startTime).Milliseconds())

	return result, nil
}

func (d *DNSChecker) checkDNSSEC(domain string) bool {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(domain), dns.TypeDNSKEY)
	m.SetEdns0(4096, true)

	r, _, err := d.client.Exchange(m, "8.8.8.8:53")
	if err != nil || r == nil {
		return false
	}

	return r.AuthenticatedData
}
