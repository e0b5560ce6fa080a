package site

import (
	"errors"

	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/jsii-runtime-go"
)

// SiteViewerCertificate binds a certificate to the hostnames viewers use.
type SiteViewerCertificate struct {
	ViewerCertificate awscloudfront.ViewerCertificate
	aliases           []string
}

// NewSiteViewerCertificate uses SNI and TLS 1.2 (2021 policy). aliases must
// not be empty.
func NewSiteViewerCertificate(cert awscertificatemanager.ICertificate, aliases []string) (*SiteViewerCertificate, error) {
	if cert == nil {
		return nil, errors.New("viewer certificate needs a certificate")
	}
	if len(aliases) == 0 {
		return nil, errors.New("viewer certificate needs at least one alias")
	}
	vc := awscloudfront.ViewerCertificate_FromAcmCertificate(cert, &awscloudfront.ViewerCertificateOptions{
		Aliases:        jsii.Strings(aliases...),
		SecurityPolicy: awscloudfront.SecurityPolicyProtocol_TLS_V1_2_2021,
		SslMethod:      awscloudfront.SSLMethod_SNI,
	})
	return &SiteViewerCertificate{
		ViewerCertificate: vc,
		aliases:           append([]string(nil), aliases...),
	}, nil
}

func (v *SiteViewerCertificate) Aliases() []string {
	return append([]string(nil), v.aliases...)
}
