package domaincheck

import (
	"fmt"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
)

type WHOISResult struct {
	Registrar    string     `json:"registrar"`
	Status       []string   `json:"status"`
	DomainExpiry *time.Time `json:"domain_expiry,omitempty"`
	DaysToExpiry int        `json:"days_to_expiry"`
}

type WHOISChecker struct{}

func NewWHOISChecker() *WHOISChecker {
	return &WHOISChecker{}
}

func (w *WHOISChecker) Check(domain string) (*WHOISResult, error) {
	raw, err := whois.Whois(domain)
	if err != nil {
		return nil, fmt.Errorf("whois lookup failed: %w", err)
	}

	result, err := whoisparser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("whois parse failed: %w", err)
	}

	return whoisDetails(result)
}

// whoisDetails shapes a parsed record. Registrar and domain blocks are
// optional in real records; many ccTLD registries omit the registrar.
func whoisDetails(info whoisparser.WhoisInfo) (*WHOISResult, error) {
	details := &WHOISResult{Status: []string{}}

	if info.Registrar != nil {
		details.Registrar = info.Registrar.Name
	}

	if info.Domain != nil {
		if info.Domain.Status != nil {
			details.Status = info.Domain.Status
		}
		if info.Domain.ExpirationDate != "" {
			if t, err := parseWhoisDate(info.Domain.ExpirationDate); err == nil {
				details.DomainExpiry = &t
				details.DaysToExpiry = int(time.Until(t).Hours() / 24)
			}
		}
	}

	if details.DaysToExpiry > 0 && details.DaysToExpiry < 60 {
		return details, fmt.Errorf("domain expiring in %d days", details.DaysToExpiry)
	}

	return details, nil
}

func parseWhoisDate(dateStr string) (time.Time, error) {
	// Try common WHOIS date formats
	formats := []string{
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		"02-Jan-2006",
		"2006.01.02 15:04:05",
		"2006/01/02",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}
