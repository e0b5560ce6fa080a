package site

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/thatsmidnight/website/infra/lib/utils"
)

var (
	ErrBucketNotConstructed = errors.New("site bucket has not been constructed")
	ErrNoPolicyActions      = errors.New("bucket policy statement needs at least one action")
	ErrNoPrincipals         = errors.New("bucket policy statement needs at least one principal")
)

// CloudFrontServicePrincipal signs origin requests made through an origin access control.
const CloudFrontServicePrincipal = "cloudfront.amazonaws.com"

type SiteBucketProps struct {
	BucketName string
	// RemovalPolicy defaults to RETAIN.
	RemovalPolicy awscdk.RemovalPolicy
}

// SiteBucket is the private origin bucket of the site.
type SiteBucket struct {
	Bucket awss3.Bucket

	// rendered statements already added through this wrapper
	statements map[string]struct{}
}

// NewSiteBucket creates a private, S3-encrypted bucket. Only CloudFront may
// read it, through statements added with AddCloudFrontOAIToPolicy or
// AddCloudFrontOACToPolicy.
func NewSiteBucket(scope constructs.Construct, id string, props *SiteBucketProps) *SiteBucket {
	if props == nil {
		props = &SiteBucketProps{}
	}
	removal := props.RemovalPolicy
	if removal == "" {
		removal = awscdk.RemovalPolicy_RETAIN
	}

	bucketProps := &awss3.BucketProps{
		BlockPublicAccess: awss3.BlockPublicAccess_BLOCK_ALL(),
		Encryption:        awss3.BucketEncryption_S3_MANAGED,
		RemovalPolicy:     removal,
	}
	if props.BucketName != "" {
		bucketProps.BucketName = jsii.String(props.BucketName)
	}

	return &SiteBucket{
		Bucket:     awss3.NewBucket(scope, jsii.String(id), bucketProps),
		statements: map[string]struct{}{},
	}
}

// ArnForObjects returns the ARN of the objects matching keyPattern, e.g. "*".
func (b *SiteBucket) ArnForObjects(keyPattern string) *string {
	return b.Bucket.ArnForObjects(jsii.String(keyPattern))
}

func (b *SiteBucket) BucketName() *string {
	return b.Bucket.BucketName()
}

// AddCloudFrontOAIToPolicy appends one statement granting actions on resources
// to principals, normally the canonical user of an origin access identity.
// Existing statements are kept; adding an identical statement again is a
// no-op. An empty resources list means every object of the bucket.
func (b *SiteBucket) AddCloudFrontOAIToPolicy(actions []S3ResourcePolicyAction, resources []*string, principals []awsiam.IPrincipal) error {
	return b.addStatement(actions, resources, principals, nil)
}

// AddCloudFrontOACToPolicy grants actions to the CloudFront service principal,
// restricted to requests made on behalf of distributionArn.
func (b *SiteBucket) AddCloudFrontOACToPolicy(actions []S3ResourcePolicyAction, resources []*string, distributionArn *string) error {
	principal := awsiam.NewServicePrincipal(jsii.String(CloudFrontServicePrincipal), nil)
	conditions := map[string]interface{}{
		"StringEquals": map[string]interface{}{
			"AWS:SourceArn": distributionArn,
		},
	}
	return b.addStatement(actions, resources, []awsiam.IPrincipal{principal}, conditions)
}

func (b *SiteBucket) addStatement(actions []S3ResourcePolicyAction, resources []*string, principals []awsiam.IPrincipal, conditions map[string]interface{}) error {
	if b == nil || b.Bucket == nil {
		return ErrBucketNotConstructed
	}
	if len(actions) == 0 {
		return ErrNoPolicyActions
	}
	if len(principals) == 0 {
		return ErrNoPrincipals
	}
	if len(resources) == 0 {
		resources = []*string{b.ArnForObjects("*")}
	}

	props := &awsiam.PolicyStatementProps{
		Effect:     awsiam.Effect_ALLOW,
		Actions:    utils.JsiiValues(actions),
		Resources:  &resources,
		Principals: &principals,
	}
	if conditions != nil {
		props.Conditions = &conditions
	}
	statement := awsiam.NewPolicyStatement(props)

	key, err := json.Marshal(statement.ToStatementJson())
	if err != nil {
		return fmt.Errorf("rendering bucket policy statement: %w", err)
	}
	if b.statements == nil {
		b.statements = map[string]struct{}{}
	}
	if _, dup := b.statements[string(key)]; dup {
		return nil
	}

	result := b.Bucket.AddToResourcePolicy(statement)
	if result == nil || result.StatementAdded == nil || !*result.StatementAdded {
		return fmt.Errorf("bucket %s rejected the policy statement", *b.Bucket.Node().Id())
	}
	b.statements[string(key)] = struct{}{}
	return nil
}
