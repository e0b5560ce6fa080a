package provider

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/aws-sdk-go/aws/arn"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/samber/lo"
	"github.com/thatsmidnight/website/infra/config"
	"github.com/thatsmidnight/website/infra/config/domain"
)

// defaultProvider is the standard implementation of CertProvider.
type defaultProvider struct{}

// New returns a CertProvider that issues certificates for edge or regional scopes.
func New() CertProvider {
	return &defaultProvider{}
}

// Get returns an ACM certificate for req.FQDN under scope.
func (p *defaultProvider) Get(
	scope constructs.Construct,
	id string,
	req Request,
) (awscertificatemanager.ICertificate, error) {
	if req.FQDN == "" {
		return nil, fmt.Errorf("certificate %s: empty domain name", id)
	}
	if err := checkScope(scope, req.Scope); err != nil {
		return nil, fmt.Errorf("certificate %s: %w", id, err)
	}

	sans := lo.Without(lo.Uniq(req.AdditionalSANs), req.FQDN, "")

	// Define certificate properties
	certProps := &awscertificatemanager.CertificateProps{
		DomainName: jsii.String(req.FQDN),
		Validation: dnsValidation(req.Zone, append([]string{req.FQDN}, sans...)),
	}
	if len(sans) > 0 {
		certProps.SubjectAlternativeNames = jsii.Strings(sans...)
	}

	return awscertificatemanager.NewCertificate(scope, jsii.String(id), certProps), nil
}

// Import references the certificate behind certArn. Edge certificates must
// come from us-east-1.
func (p *defaultProvider) Import(
	scope constructs.Construct,
	id string,
	certArn string,
	s CertScope,
) (awscertificatemanager.ICertificate, error) {
	parsed, err := arn.Parse(certArn)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidCertArn, certArn, err)
	}
	if parsed.Service != "acm" {
		return nil, fmt.Errorf("%w %q: service is %q", ErrInvalidCertArn, certArn, parsed.Service)
	}
	if s == ScopeEdge && !config.IsEdgeRegion(parsed.Region) {
		return nil, fmt.Errorf("%w: %s is in %s", ErrNotEdgeRegion, certArn, parsed.Region)
	}

	return awscertificatemanager.Certificate_FromCertificateArn(scope, jsii.String(id), jsii.String(certArn)), nil
}

// dnsValidation binds only the names inside zone to it. Names outside the zone
// get no validation record and must be validated by hand.
func dnsValidation(zone awsroute53.IHostedZone, names []string) awscertificatemanager.CertificateValidation {
	if zone == nil || zone.ZoneName() == nil || *awscdk.Token_IsUnresolved(zone.ZoneName()) {
		return awscertificatemanager.CertificateValidation_FromDns(zone)
	}
	zones := map[string]awsroute53.IHostedZone{}
	inside, _ := domain.SplitByZone(names, *zone.ZoneName())
	for _, name := range inside {
		zones[name] = zone
	}
	return awscertificatemanager.CertificateValidation_FromDnsMultiZone(&zones)
}

// checkScope rejects edge certificates in a stack that resolved to a region
// other than us-east-1. Environment-agnostic stacks pass.
func checkScope(scope constructs.Construct, s CertScope) error {
	if s != ScopeEdge {
		return nil
	}
	region := awscdk.Stack_Of(scope).Region()
	if region == nil || *awscdk.Token_IsUnresolved(region) {
		return nil
	}
	if !config.IsEdgeRegion(*region) {
		return fmt.Errorf("%w: stack region is %s", ErrNotEdgeRegion, *region)
	}
	return nil
}
