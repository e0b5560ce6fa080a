package site

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

type SiteOriginIdentityProps struct {
	Comment string
}

// SiteOriginIdentity is the legacy CloudFront principal allowed to read the bucket.
type SiteOriginIdentity struct {
	Identity awscloudfront.OriginAccessIdentity
}

func NewSiteOriginIdentity(scope constructs.Construct, id string, props *SiteOriginIdentityProps) *SiteOriginIdentity {
	oaiProps := &awscloudfront.OriginAccessIdentityProps{}
	if props != nil && props.Comment != "" {
		oaiProps.Comment = jsii.String(props.Comment)
	}
	return &SiteOriginIdentity{
		Identity: awscloudfront.NewOriginAccessIdentity(scope, jsii.String(id), oaiProps),
	}
}

// CanonicalUserID is the S3 canonical user id bucket policies grant to.
func (o *SiteOriginIdentity) CanonicalUserID() *string {
	return o.Identity.CloudFrontOriginAccessIdentityS3CanonicalUserId()
}

// Principal wraps CanonicalUserID as an IAM principal.
func (o *SiteOriginIdentity) Principal() awsiam.IPrincipal {
	return awsiam.NewCanonicalUserPrincipal(o.CanonicalUserID())
}
