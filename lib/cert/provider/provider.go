package provider

import (
	"errors"

	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
)

// CertScope indicates certificate issuance scope: edge or region.
type CertScope string

const (
	// ScopeEdge requires the certificate to live in us-east-1 so CloudFront can use it.
	ScopeEdge CertScope = "edge"
	// ScopeRegion issues a certificate in the same region as the calling stack.
	ScopeRegion CertScope = "region"
)

var (
	ErrNotEdgeRegion  = errors.New("edge certificates must be issued in us-east-1")
	ErrInvalidCertArn = errors.New("invalid ACM certificate ARN")
)

// Request describes the certificate a caller needs.
type Request struct {
	FQDN string
	// Zone validates the certificate through DNS records it creates. Nil
	// means the validation records are added by hand.
	Zone           awsroute53.IHostedZone
	Scope          CertScope
	AdditionalSANs []string
}

// CertProvider defines how to obtain an ACM certificate for a domain.
type CertProvider interface {
	// Get issues a DNS-validated certificate under scope.
	Get(scope constructs.Construct, id string, req Request) (awscertificatemanager.ICertificate, error)
	// Import references an existing certificate by ARN.
	Import(scope constructs.Construct, id string, certArn string, s CertScope) (awscertificatemanager.ICertificate, error)
}
