package domaincheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreAnalysis(t *testing.T) {
	spf := "v=spf1 include:_spf.example.com ~all"
	dmarc := "v=DMARC1; p=quarantine"
	whoisErr := "whois lookup failed"

	tests := []struct {
		name     string
		analysis Analysis
		want     int
	}{
		{"nothing resolved", Analysis{}, 0},
		{
			"fully configured domain",
			Analysis{
				DNS: &DNSResult{
					MXRecords:   []MXRecord{{Priority: 10, Host: "mx1.example.com"}},
					SPFRecord:   &spf,
					DKIMFound:   true,
					DMARCRecord: &dmarc,
					HasDNSSEC:   true,
				},
				WHOIS: &WHOISResult{Registrar: "Example Registrar"},
			},
			100,
		},
		{
			"mx only",
			Analysis{DNS: &DNSResult{MXRecords: []MXRecord{{Priority: 10, Host: "mx1.example.com"}}}},
			20,
		},
		{
			"auth records without mx",
			Analysis{DNS: &DNSResult{SPFRecord: &spf, DKIMFound: true, DMARCRecord: &dmarc}},
			65,
		},
		{
			"whois error forfeits registration points",
			Analysis{
				WHOIS:      &WHOISResult{Registrar: "Example Registrar"},
				WHOISError: &whoisErr,
			},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreAnalysis(&tt.analysis))
		})
	}
}
