package domain

import (
	"strings"

	jsii "github.com/aws/jsii-runtime-go"
)

// MainDomain is the default root; dev deployments prepend Spec.DevPrefix before it.
const MainDomain = string(DomainNameApex)

// StageType defines allowed deployment stages.
type StageType string

const (
	// StageProd serves the site on the root domain
	StageProd StageType = "prod"
	// StageDev serves the site under a developer prefix
	StageDev StageType = "dev"
)

// ParseStage converts a raw string into a StageType, or returns false.
func ParseStage(s string) (StageType, bool) {
	switch StageType(s) {
	case StageProd, StageDev:
		return StageType(s), true
	default:
		return "", false
	}
}

// Spec encapsulates the root domain, the stage and (for dev) the mandatory
// DevPrefix.
type Spec struct {
	Root      string // defaults to MainDomain
	Stage     StageType
	DevPrefix string // required when Stage==StageDev
}

func (s Spec) root() string {
	if s.Root == "" {
		return MainDomain
	}
	return strings.TrimSuffix(s.Root, ".")
}

// fqdnParts returns labels in order: DevPrefix (dev only), root
func (s Spec) fqdnParts() []string {
	if s.Stage == StageProd && s.DevPrefix != "" {
		panic("DevPrefix must be empty for prod stages")
	}
	parts := []string{}
	if s.Stage == StageDev {
		if s.DevPrefix == "" {
			panic("dev deployments must set Spec.DevPrefix")
		}
		parts = append(parts, s.DevPrefix)
	}
	parts = append(parts, s.root())
	return parts
}

// FQDN returns the fully-qualified domain by joining fqdnParts with a dot.
func (s Spec) FQDN() *string {
	return jsii.String(strings.Join(s.fqdnParts(), "."))
}

// Subdomain returns a fully-qualified subdomain for the given label,
// e.g. "www.dev1.thatsmidnight.com".
func (s Spec) Subdomain(label string) *string {
	parts := append([]string{label}, s.fqdnParts()...)
	return jsii.String(strings.Join(parts, "."))
}

// WWW is shorthand for Subdomain("www").
func (s Spec) WWW() *string {
	return s.Subdomain("www")
}

// InZone reports whether name is zoneName itself or a name below it.
func InZone(name, zoneName string) bool {
	name = strings.TrimSuffix(name, ".")
	zoneName = strings.TrimSuffix(zoneName, ".")
	return name == zoneName || strings.HasSuffix(name, "."+zoneName)
}

// SplitByZone partitions names into those InZone of zoneName and the rest,
// keeping their order.
func SplitByZone(names []string, zoneName string) (inside, outside []string) {
	for _, name := range names {
		if InZone(name, zoneName) {
			inside = append(inside, name)
		} else {
			outside = append(outside, name)
		}
	}
	return inside, outside
}
