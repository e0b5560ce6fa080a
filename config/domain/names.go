package domain

import "github.com/thatsmidnight/website/infra/lib/utils"

// DomainName is one of the fixed names the site answers on.
type DomainName string

const (
	DomainNameApex DomainName = "thatsmidnight.com"
	DomainNameWWW  DomainName = "www.thatsmidnight.com"
)

// DomainNames returns every DomainName in declaration order.
func DomainNames() []DomainName {
	return []DomainName{DomainNameApex, DomainNameWWW}
}

// DomainNameValues returns the literal values of DomainNames.
func DomainNameValues() []string {
	return utils.StringValues(DomainNames())
}
