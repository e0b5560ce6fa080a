package stacks_test

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatsmidnight/website/infra/config"
	"github.com/thatsmidnight/website/infra/config/sitefile"
	"github.com/thatsmidnight/website/infra/lib/constructs/originaccess"
	"github.com/thatsmidnight/website/infra/lib/constructs/site"
	"github.com/thatsmidnight/website/infra/stacks"
	"github.com/thatsmidnight/website/infra/tests/testdata"
	"github.com/thatsmidnight/website/infra/tests/testhelpers"
)

func exampleSite(t *testing.T, file sitefile.StageConfig) config.Site {
	t.Helper()
	if file.Domain == "" {
		file.Domain = "example.com"
	}
	s, err := config.BuildSite(config.SiteInputs{
		AssetPath: testdata.SiteAssetPath(),
		File:      file,
	})
	require.NoError(t, err)
	return s
}

func newSiteStack(t *testing.T, s config.Site, vars config.EnvironmentVariables) (*stacks.StaticSiteStack, assertions.Template) {
	t.Helper()
	app := awscdk.NewApp(nil)
	stack, err := stacks.NewStaticSiteStack(app, "SiteStack", &stacks.StaticSiteStackProps{
		Account: testhelpers.TestAccount,
		Region:  string(config.RegionUSEast1),
		Vars:    vars,
		Site:    s,
	})
	require.NoError(t, err)
	return stack, assertions.Template_FromStack(stack.Stack, nil)
}

func TestStaticSiteStack_ViewerAliases(t *testing.T) {
	_, template := newSiteStack(t, exampleSite(t, sitefile.StageConfig{}), config.EnvironmentVariables{})

	template.HasResourceProperties(jsii.String("AWS::CloudFront::Distribution"), map[string]interface{}{
		"DistributionConfig": assertions.Match_ObjectLike(&map[string]interface{}{
			"Aliases": []interface{}{"example.com"},
		}),
	})
	template.HasResourceProperties(jsii.String("AWS::CertificateManager::Certificate"), map[string]interface{}{
		"DomainName": "example.com",
	})
}

func TestStaticSiteStack_ResourceCounts(t *testing.T) {
	stack, template := newSiteStack(t, exampleSite(t, sitefile.StageConfig{}), config.EnvironmentVariables{})

	template.ResourceCountIs(jsii.String("AWS::S3::Bucket"), jsii.Number(1))
	template.ResourceCountIs(jsii.String("AWS::CertificateManager::Certificate"), jsii.Number(1))
	template.ResourceCountIs(jsii.String("AWS::CloudFront::CloudFrontOriginAccessIdentity"), jsii.Number(1))
	template.ResourceCountIs(jsii.String("AWS::CloudFront::Distribution"), jsii.Number(1))
	template.ResourceCountIs(jsii.String("Custom::CDKBucketDeployment"), jsii.Number(1))
	template.ResourceCountIs(jsii.String("AWS::CloudFront::OriginAccessControl"), jsii.Number(0))
	template.ResourceCountIs(jsii.String("AWS::Route53::RecordSet"), jsii.Number(0))

	template.HasParameter(jsii.String(config.DefaultRootObjectParamName), map[string]interface{}{
		"Default": "index.html",
	})
	template.HasOutput(jsii.String("DistributionId"), map[string]interface{}{})
	template.HasOutput(jsii.String("BucketName"), map[string]interface{}{})

	require.NotNil(t, stack.OriginIdentity)
	assert.Nil(t, stack.OriginAccessControl)
	assert.Nil(t, stack.HostedDomain)
	assert.NotNil(t, stack.Deployment)
}

func TestStaticSiteStack_SingleCloudFrontReadStatement(t *testing.T) {
	_, template := newSiteStack(t, exampleSite(t, sitefile.StageConfig{}), config.EnvironmentVariables{})

	matching := testhelpers.StatementsWithActions(
		testhelpers.BucketPolicyStatements(template),
		[]string{"s3:GetObject*", "s3:GetBucket*", "s3:List*"},
	)
	require.Len(t, matching, 1)
	assert.Equal(t, "CanonicalUser", testhelpers.PrincipalKey(matching[0]))
	assert.Equal(t, "Allow", matching[0]["Effect"])
}

func TestStaticSiteStack_Deterministic(t *testing.T) {
	s := exampleSite(t, sitefile.StageConfig{})

	_, first := newSiteStack(t, s, config.EnvironmentVariables{})
	_, second := newSiteStack(t, s, config.EnvironmentVariables{})

	assert.Equal(t, *first.ToJSON(), *second.ToJSON())
}

func TestStaticSiteStack_UnresolvedEnvironment(t *testing.T) {
	app := awscdk.NewApp(nil)
	_, err := stacks.NewStaticSiteStack(app, "SiteStack", &stacks.StaticSiteStackProps{
		Site: exampleSite(t, sitefile.StageConfig{}),
	})
	require.ErrorIs(t, err, config.ErrAccountUnresolved)

	_, err = stacks.NewStaticSiteStack(app, "SiteStackNoRegion", &stacks.StaticSiteStackProps{
		Account: testhelpers.TestAccount,
		Site:    exampleSite(t, sitefile.StageConfig{}),
	})
	require.ErrorIs(t, err, config.ErrRegionUnresolved)

	assert.Empty(t, *app.Node().Children(), "no stack may be added on failure")
}

func TestStaticSiteStack_EnvironmentFallback(t *testing.T) {
	app := awscdk.NewApp(nil)
	stack, err := stacks.NewStaticSiteStack(app, "SiteStack", &stacks.StaticSiteStackProps{
		Vars: config.EnvironmentVariables{
			DefaultAccount: testhelpers.TestAccount,
			DefaultRegion:  testhelpers.TestRegion,
		},
		Site: exampleSite(t, sitefile.StageConfig{}),
	})
	require.NoError(t, err)
	assert.Equal(t, testhelpers.TestAccount, *stack.Account())
	assert.Equal(t, testhelpers.TestRegion, *stack.Region())
}

func TestStaticSiteStack_InvalidSite(t *testing.T) {
	app := awscdk.NewApp(nil)
	_, err := stacks.NewStaticSiteStack(app, "SiteStack", &stacks.StaticSiteStackProps{
		Account: testhelpers.TestAccount,
		Region:  testhelpers.TestRegion,
	})
	assert.ErrorContains(t, err, "invalid site config")
}

func TestStaticSiteStack_OAC(t *testing.T) {
	s := exampleSite(t, sitefile.StageConfig{OriginAccess: string(originaccess.KindOAC)})
	stack, template := newSiteStack(t, s, config.EnvironmentVariables{})

	require.NotNil(t, stack.OriginAccessControl)
	assert.Nil(t, stack.OriginIdentity)

	template.ResourceCountIs(jsii.String("AWS::CloudFront::OriginAccessControl"), jsii.Number(1))
	template.ResourceCountIs(jsii.String("AWS::CloudFront::CloudFrontOriginAccessIdentity"), jsii.Number(0))
	template.HasResourceProperties(jsii.String("AWS::CloudFront::OriginAccessControl"), map[string]interface{}{
		"OriginAccessControlConfig": assertions.Match_ObjectLike(&map[string]interface{}{
			"Name":            "example-com-oac",
			"SigningBehavior": "always",
		}),
	})

	matching := testhelpers.StatementsWithActions(
		testhelpers.BucketPolicyStatements(template),
		site.S3ResourcePolicyActionValues(),
	)
	require.Len(t, matching, 1)
	assert.Equal(t, "Service", testhelpers.PrincipalKey(matching[0]))
}

func TestStaticSiteStack_HostedZoneRecords(t *testing.T) {
	www := true
	s := exampleSite(t, sitefile.StageConfig{
		IncludeWWW:   &www,
		Aliases:      []string{"example.org"},
		HostedZoneID: "Z0000000EXAMPLE",
	})
	stack, template := newSiteStack(t, s, config.EnvironmentVariables{})

	require.NotNil(t, stack.HostedDomain)
	assert.Equal(t, []string{"example.com", "www.example.com", "example.org"}, stack.ViewerCertificate.Aliases())

	// example.org is outside the zone and gets a warning instead of a record
	template.ResourceCountIs(jsii.String("AWS::Route53::RecordSet"), jsii.Number(2))
	template.HasResourceProperties(jsii.String("AWS::Route53::RecordSet"), map[string]interface{}{
		"Name":         "www.example.com.",
		"Type":         "A",
		"HostedZoneId": "Z0000000EXAMPLE",
	})
	assertions.Annotations_FromStack(stack.Stack).HasWarning(
		jsii.String("/SiteStack"),
		assertions.Match_StringLikeRegexp(jsii.String("example.org is outside hosted zone")),
	)

	// only in-zone names get validation records in the zone
	template.HasResourceProperties(jsii.String("AWS::CertificateManager::Certificate"), map[string]interface{}{
		"DomainValidationOptions": []interface{}{
			map[string]interface{}{"DomainName": "example.com", "HostedZoneId": "Z0000000EXAMPLE"},
			map[string]interface{}{"DomainName": "www.example.com", "HostedZoneId": "Z0000000EXAMPLE"},
		},
	})
}

func TestStaticSiteStack_PriceClass(t *testing.T) {
	_, template := newSiteStack(t, exampleSite(t, sitefile.StageConfig{PriceClass: "PriceClass_100"}), config.EnvironmentVariables{})

	template.HasResourceProperties(jsii.String("AWS::CloudFront::Distribution"), map[string]interface{}{
		"DistributionConfig": assertions.Match_ObjectLike(&map[string]interface{}{
			"PriceClass": "PriceClass_100",
		}),
	})
}

func TestStaticSiteStack_ImportedCertificate(t *testing.T) {
	s := exampleSite(t, sitefile.StageConfig{
		CertificateArn: "arn:aws:acm:us-east-1:123456789012:certificate/abc",
	})
	_, template := newSiteStack(t, s, config.EnvironmentVariables{})
	template.ResourceCountIs(jsii.String("AWS::CertificateManager::Certificate"), jsii.Number(0))
}

func TestStaticSiteStack_ImportedCertificateWrongRegion(t *testing.T) {
	s, err := config.BuildSite(config.SiteInputs{
		AssetPath: testdata.SiteAssetPath(),
		Vars:      config.EnvironmentVariables{CertificateArn: "arn:aws:acm:eu-west-1:123456789012:certificate/abc"},
	})
	require.NoError(t, err)

	app := awscdk.NewApp(nil)
	_, err = stacks.NewStaticSiteStack(app, "SiteStack", &stacks.StaticSiteStackProps{
		Account: testhelpers.TestAccount,
		Region:  testhelpers.TestRegion,
		Site:    s,
	})
	assert.Error(t, err)
}
