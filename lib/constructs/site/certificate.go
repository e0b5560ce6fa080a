package site

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/thatsmidnight/website/infra/config/domain"
	"github.com/thatsmidnight/website/infra/lib/cdklogger"
	"github.com/thatsmidnight/website/infra/lib/cert/provider"
)

type SiteCertificateProps struct {
	DomainName              string
	SubjectAlternativeNames []string
	// HostedZone validates the certificate automatically when set.
	HostedZone awsroute53.IHostedZone
	// ImportedCertificateArn skips issuance and references an existing certificate.
	ImportedCertificateArn string
	// Provider defaults to provider.New().
	Provider provider.CertProvider
}

// SiteCertificate is the TLS certificate CloudFront presents to viewers.
type SiteCertificate struct {
	cert awscertificatemanager.ICertificate
}

// NewSiteCertificate issues (or imports) an edge certificate for the site domain.
func NewSiteCertificate(scope constructs.Construct, id string, props *SiteCertificateProps) (*SiteCertificate, error) {
	if props == nil {
		return nil, fmt.Errorf("certificate %s: props are required", id)
	}
	certProvider := props.Provider
	if certProvider == nil {
		certProvider = provider.New()
	}

	if props.ImportedCertificateArn != "" {
		cert, err := certProvider.Import(scope, id, props.ImportedCertificateArn, provider.ScopeEdge)
		if err != nil {
			return nil, err
		}
		cdklogger.LogInfo(scope, id, "Using imported certificate %s", props.ImportedCertificateArn)
		return &SiteCertificate{cert: cert}, nil
	}

	cert, err := certProvider.Get(scope, id, provider.Request{
		FQDN:           props.DomainName,
		Zone:           props.HostedZone,
		Scope:          provider.ScopeEdge,
		AdditionalSANs: props.SubjectAlternativeNames,
	})
	if err != nil {
		return nil, err
	}
	if props.HostedZone == nil {
		cdklogger.LogWarning(scope, id, "No hosted zone configured: add the DNS validation records for %s by hand", props.DomainName)
	} else if zoneName := props.HostedZone.ZoneName(); zoneName != nil && !*awscdk.Token_IsUnresolved(zoneName) {
		_, outside := domain.SplitByZone(props.SubjectAlternativeNames, *zoneName)
		for _, name := range outside {
			cdklogger.LogWarning(scope, id, "%s is outside hosted zone %s: add its DNS validation record by hand", name, *zoneName)
		}
	}
	return &SiteCertificate{cert: cert}, nil
}

func (c *SiteCertificate) Certificate() awscertificatemanager.ICertificate {
	return c.cert
}

func (c *SiteCertificate) CertificateArn() *string {
	return c.cert.CertificateArn()
}
