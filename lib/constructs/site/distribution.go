package site

import (
	"errors"
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// ErrUnknownPriceClass is returned for a price class CloudFront does not offer.
var ErrUnknownPriceClass = errors.New("unknown price class")

// priceClasses maps CloudFormation price class values to their CDK enum members.
var priceClasses = map[string]awscloudfront.PriceClass{
	"PriceClass_100": awscloudfront.PriceClass_PRICE_CLASS_100,
	"PriceClass_200": awscloudfront.PriceClass_PRICE_CLASS_200,
	"PriceClass_All": awscloudfront.PriceClass_PRICE_CLASS_ALL,
}

// ParsePriceClass converts a CloudFormation price class such as
// "PriceClass_100" into the CDK enum. Empty input yields "".
func ParsePriceClass(s string) (awscloudfront.PriceClass, error) {
	if s == "" {
		return "", nil
	}
	pc, ok := priceClasses[s]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownPriceClass, s)
	}
	return pc, nil
}

type SiteDistributionProps struct {
	Bucket *SiteBucket
	// Exactly one of OriginIdentity and OriginAccessControl must be set.
	OriginIdentity      *SiteOriginIdentity
	OriginAccessControl *SiteOriginAccessControl
	// AllowedMethods defaults to GET_HEAD_OPTIONS.
	AllowedMethods    awscloudfront.CloudFrontAllowedMethods
	ViewerCertificate *SiteViewerCertificate
	// DefaultRootObject may be a token, e.g. a CfnParameter value.
	DefaultRootObject *string
	// PriceClass defaults to PRICE_CLASS_ALL.
	PriceClass awscloudfront.PriceClass
	Comment    string
}

// SiteDistribution is the CDN in front of the site bucket.
type SiteDistribution struct {
	Distribution awscloudfront.CloudFrontWebDistribution
}

func NewSiteDistribution(scope constructs.Construct, id string, props *SiteDistributionProps) (*SiteDistribution, error) {
	if props == nil || props.Bucket == nil || props.Bucket.Bucket == nil {
		return nil, fmt.Errorf("distribution %s: %w", id, ErrBucketNotConstructed)
	}
	if (props.OriginIdentity == nil) == (props.OriginAccessControl == nil) {
		return nil, fmt.Errorf("distribution %s: exactly one of origin identity or origin access control is required", id)
	}
	if props.ViewerCertificate == nil {
		return nil, errors.New("distribution " + id + ": viewer certificate is required")
	}

	allowed := props.AllowedMethods
	if allowed == "" {
		allowed = awscloudfront.CloudFrontAllowedMethods_GET_HEAD_OPTIONS
	}

	origin := &awscloudfront.S3OriginConfig{
		S3BucketSource: props.Bucket.Bucket,
	}
	if props.OriginIdentity != nil {
		origin.OriginAccessIdentity = props.OriginIdentity.Identity
	}

	distProps := &awscloudfront.CloudFrontWebDistributionProps{
		OriginConfigs: &[]*awscloudfront.SourceConfiguration{
			{
				S3OriginSource: origin,
				Behaviors: &[]*awscloudfront.Behavior{
					{
						IsDefaultBehavior: jsii.Bool(true),
						AllowedMethods:    allowed,
						Compress:          jsii.Bool(true),
					},
				},
			},
		},
		ViewerCertificate:    props.ViewerCertificate.ViewerCertificate,
		ViewerProtocolPolicy: awscloudfront.ViewerProtocolPolicy_REDIRECT_TO_HTTPS,
		HttpVersion:          awscloudfront.HttpVersion_HTTP2_AND_3,
		DefaultRootObject:    props.DefaultRootObject,
	}
	if props.PriceClass != "" {
		distProps.PriceClass = props.PriceClass
	}
	if props.Comment != "" {
		distProps.Comment = jsii.String(props.Comment)
	}

	dist := awscloudfront.NewCloudFrontWebDistribution(scope, jsii.String(id), distProps)

	if oac := props.OriginAccessControl; oac != nil {
		// CloudFrontWebDistribution has no OAC prop; patch the generated origin.
		cfnDist := dist.Node().DefaultChild().(awscloudfront.CfnDistribution)
		cfnDist.AddPropertyOverride(jsii.String("DistributionConfig.Origins.0.OriginAccessControlId"), oac.ID())
		cfnDist.AddPropertyOverride(jsii.String("DistributionConfig.Origins.0.S3OriginConfig.OriginAccessIdentity"), jsii.String(""))
	}

	return &SiteDistribution{Distribution: dist}, nil
}

func (d *SiteDistribution) DistributionID() *string {
	return d.Distribution.DistributionId()
}

func (d *SiteDistribution) DomainName() *string {
	return d.Distribution.DistributionDomainName()
}

// DistributionArn is the global ARN used in AWS:SourceArn conditions.
func (d *SiteDistribution) DistributionArn() *string {
	return awscdk.Stack_Of(d.Distribution).FormatArn(&awscdk.ArnComponents{
		Service:      jsii.String("cloudfront"),
		Region:       jsii.String(""),
		Resource:     jsii.String("distribution"),
		ResourceName: d.DistributionID(),
	})
}
