package validators

import (
	"net"
	"strings"
)

// DomainChecker rejects addresses whose domain has neither MX nor A
// records. A disabled checker accepts everything.
type DomainChecker struct {
	enabled  bool
	lookupMX func(string) ([]*net.MX, error)
	lookupIP func(string) ([]net.IP, error)
}

func NewDomainChecker(enabled bool) *DomainChecker {
	return &DomainChecker{
		enabled:  enabled,
		lookupMX: net.LookupMX,
		lookupIP: net.LookupIP,
	}
}

func (d *DomainChecker) IsEmailDomainValid(email string) bool {
	if d == nil || !d.enabled {
		return true
	}

	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := d.lookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := d.lookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
