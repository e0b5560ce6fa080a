package stacks

import (
	"fmt"
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53targets"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3deployment"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/samber/lo"
	"github.com/thatsmidnight/website/infra/config"
	"github.com/thatsmidnight/website/infra/config/domain"
	"github.com/thatsmidnight/website/infra/lib/cdklogger"
	"github.com/thatsmidnight/website/infra/lib/cert/provider"
	"github.com/thatsmidnight/website/infra/lib/constructs/site"
	"github.com/thatsmidnight/website/infra/lib/logging"
	"github.com/thatsmidnight/website/infra/lib/renderer"
	"go.uber.org/zap"
)

// maxOACNameLength is CloudFront's limit on origin access control names.
const maxOACNameLength = 64

type StaticSiteStackProps struct {
	awscdk.StackProps
	// Account and Region take precedence over the environment.
	Account string
	Region  string
	Vars    config.EnvironmentVariables
	Site    config.Site
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
	// CertProvider defaults to provider.New().
	CertProvider provider.CertProvider
}

// StaticSiteStack serves a static site from a private S3 bucket through CloudFront.
type StaticSiteStack struct {
	awscdk.Stack

	Bucket            *site.SiteBucket
	Certificate       *site.SiteCertificate
	ViewerCertificate *site.SiteViewerCertificate
	Distribution      *site.SiteDistribution
	// OriginIdentity is set in OAI mode, OriginAccessControl in OAC mode.
	OriginIdentity      *site.SiteOriginIdentity
	OriginAccessControl *site.SiteOriginAccessControl
	// HostedDomain is nil without a hosted zone id.
	HostedDomain *domain.HostedDomain
	// Deployment is nil when the stack is not being synthesized.
	Deployment *site.SiteDeployment
}

// NewStaticSiteStack composes bucket, certificate, origin access, viewer
// certificate, distribution and deployment in that order. Any failure aborts
// the whole composition.
func NewStaticSiteStack(scope constructs.Construct, id string, props *StaticSiteStackProps) (*StaticSiteStack, error) {
	if props == nil {
		props = &StaticSiteStackProps{}
	}
	log := logging.OrNop(props.Logger).With(zap.String("stack", id))
	cfg := props.Site

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// 1. Every resource shares one account/region pair.
	accountRegion := config.ResolveAccountRegion(props.Account, props.Region, props.Vars)
	if err := accountRegion.Validate(); err != nil {
		return nil, fmt.Errorf("stack %s: %w", id, err)
	}

	sprops := props.StackProps
	sprops.Env = accountRegion.Environment()
	stack := awscdk.NewStack(scope, jsii.String(id), &sprops)
	s := &StaticSiteStack{Stack: stack}

	log.Info("composing static site",
		zap.String("account", *accountRegion.Account),
		zap.String("region", *accountRegion.Region),
		zap.String("domain", cfg.Domain),
		zap.Strings("aliases", cfg.Aliases),
		zap.String("originAccess", string(cfg.OriginAccess)),
	)

	cdkParams := config.NewCDKParams(stack, cfg.DefaultRootObject)

	var zone awsroute53.IHostedZone
	if cfg.HostedZoneID != "" {
		s.HostedDomain = domain.NewHostedDomain(stack, "HostedDomain", &domain.HostedDomainProps{
			HostedZoneID: cfg.HostedZoneID,
			ZoneName:     cfg.ZoneName,
		})
		zone = s.HostedDomain.Zone
	}

	// 2. Bucket
	s.Bucket = site.NewSiteBucket(stack, "SiteBucket", &site.SiteBucketProps{
		BucketName: cfg.BucketName,
	})

	// 3. Certificate
	cert, err := site.NewSiteCertificate(stack, "SiteCertificate", &site.SiteCertificateProps{
		DomainName:              cfg.Domain,
		SubjectAlternativeNames: cfg.Aliases,
		HostedZone:              zone,
		ImportedCertificateArn:  cfg.CertificateArn,
		Provider:                props.CertProvider,
	})
	if err != nil {
		return nil, err
	}
	s.Certificate = cert

	// 4./5. Origin access and, for OAI, the bucket policy
	if cfg.OriginAccess.UsesIdentity() {
		s.OriginIdentity = site.NewSiteOriginIdentity(stack, "SiteOriginIdentity", &site.SiteOriginIdentityProps{
			Comment: "CloudFront OAI for " + cfg.Domain,
		})
		err := s.Bucket.AddCloudFrontOAIToPolicy(
			site.S3ResourcePolicyActions(),
			[]*string{s.Bucket.ArnForObjects("*")},
			[]awsiam.IPrincipal{s.OriginIdentity.Principal()},
		)
		if err != nil {
			return nil, fmt.Errorf("attaching CloudFront read policy: %w", err)
		}
	} else {
		oacCfg, err := site.NewOACConfig(site.OACConfigProps{
			Name:            jsii.String(lo.CoalesceOrEmpty(lo.FromPtr(cfg.OAC.Name), defaultOACName(cfg.Domain))),
			OriginType:      cfg.OAC.OriginType,
			SigningBehavior: cfg.OAC.SigningBehavior,
			SigningProtocol: cfg.OAC.SigningProtocol,
			Description:     cfg.OAC.Description,
		})
		if err != nil {
			return nil, err
		}
		s.OriginAccessControl = site.NewSiteOriginAccessControl(stack, "SiteOriginAccessControl", oacCfg)
	}
	cdklogger.LogInfo(stack, "", "Origin access mode: %s", cfg.OriginAccess)

	// 6. Viewer certificate
	s.ViewerCertificate, err = site.NewSiteViewerCertificate(s.Certificate.Certificate(), cfg.Aliases)
	if err != nil {
		return nil, err
	}

	// 7. Distribution
	priceClass, err := site.ParsePriceClass(cfg.PriceClass)
	if err != nil {
		return nil, err
	}
	s.Distribution, err = site.NewSiteDistribution(stack, "SiteDistribution", &site.SiteDistributionProps{
		Bucket:              s.Bucket,
		OriginIdentity:      s.OriginIdentity,
		OriginAccessControl: s.OriginAccessControl,
		AllowedMethods:      awscloudfront.CloudFrontAllowedMethods_GET_HEAD_OPTIONS,
		ViewerCertificate:   s.ViewerCertificate,
		DefaultRootObject:   cdkParams.DefaultRootObject.ValueAsString(),
		PriceClass:          priceClass,
		Comment:             "Static site " + cfg.Domain,
	})
	if err != nil {
		return nil, err
	}

	if s.OriginAccessControl != nil {
		err := s.Bucket.AddCloudFrontOACToPolicy(
			site.S3ResourcePolicyActions(),
			[]*string{s.Bucket.ArnForObjects("*")},
			s.Distribution.DistributionArn(),
		)
		if err != nil {
			return nil, fmt.Errorf("attaching CloudFront read policy: %w", err)
		}
	}

	if s.HostedDomain != nil {
		s.addAliasRecords(cfg)
	}

	// 8. Deployment. Skipped when this stack is not selected for synthesis so
	// the asset directory is only read when needed.
	if config.IsStackInSynthesis(stack) {
		generated, err := renderGeneratedFiles(cfg)
		if err != nil {
			return nil, err
		}
		s.Deployment, err = site.NewSiteDeployment(stack, "SiteDeployment", &site.SiteDeploymentProps{
			Sources:           []awss3deployment.ISource{awss3deployment.Source_Asset(jsii.String(cfg.AssetPath), nil)},
			GeneratedFiles:    generated,
			DestinationBucket: s.Bucket,
			Distribution:      s.Distribution,
			DistributionPaths: cfg.DistributionPaths,
		})
		if err != nil {
			return nil, err
		}
	} else {
		log.Debug("stack not in synthesis, skipping deployment")
	}

	s.addOutputs()

	return s, nil
}

// addAliasRecords points every alias inside the hosted zone at the distribution.
func (s *StaticSiteStack) addAliasRecords(cfg config.Site) {
	target := awsroute53.RecordTarget_FromAlias(awsroute53targets.NewCloudFrontTarget(s.Distribution.Distribution))
	inside, outside := domain.SplitByZone(cfg.Aliases, cfg.ZoneName)
	for i, alias := range inside {
		s.HostedDomain.AddAliasRecord(fmt.Sprintf("AliasRecord%d", i), alias, target)
	}
	for _, alias := range outside {
		cdklogger.LogWarning(s.Stack, "", "Alias %s is outside hosted zone %s; create its record by hand", alias, cfg.ZoneName)
	}
}

func (s *StaticSiteStack) addOutputs() {
	awscdk.NewCfnOutput(s.Stack, jsii.String("BucketName"), &awscdk.CfnOutputProps{
		Value: s.Bucket.BucketName(),
	})
	awscdk.NewCfnOutput(s.Stack, jsii.String("DistributionId"), &awscdk.CfnOutputProps{
		Value: s.Distribution.DistributionID(),
	})
	awscdk.NewCfnOutput(s.Stack, jsii.String("DistributionDomainName"), &awscdk.CfnOutputProps{
		Value: s.Distribution.DomainName(),
	})
	awscdk.NewCfnOutput(s.Stack, jsii.String("CertificateArn"), &awscdk.CfnOutputProps{
		Value: s.Certificate.CertificateArn(),
	})
}

func renderGeneratedFiles(cfg config.Site) ([]site.GeneratedFile, error) {
	robots, err := renderer.Render(renderer.TplRobots, renderer.RobotsData{
		Domain:        cfg.Domain,
		AllowIndexing: cfg.AllowIndexing,
	})
	if err != nil {
		return nil, err
	}
	info, err := renderer.Render(renderer.TplSiteInfo, renderer.SiteInfoData{
		Domain:       cfg.Domain,
		Stage:        string(cfg.Stage),
		Aliases:      cfg.Aliases,
		OriginAccess: string(cfg.OriginAccess),
	})
	if err != nil {
		return nil, err
	}
	return []site.GeneratedFile{
		{Key: renderer.RobotsKey, Content: robots},
		{Key: renderer.SiteInfoKey, Content: info},
	}, nil
}

func defaultOACName(fqdn string) string {
	name := strings.ReplaceAll(fqdn, ".", "-") + "-oac"
	if len(name) > maxOACNameLength {
		name = name[:maxOACNameLength]
	}
	return name
}
