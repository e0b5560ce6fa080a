package config

import (
	"fmt"

	"github.com/aws/constructs-go/constructs/v10"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/thatsmidnight/website/infra/config/domain"
	"github.com/thatsmidnight/website/infra/config/sitefile"
	"github.com/thatsmidnight/website/infra/lib/constructs/originaccess"
)

// DefaultDistributionPath invalidates every cached object after a deployment.
const DefaultDistributionPath = "/*"

// Site is the resolved configuration of one static site deployment. It is
// built once at the entry point and passed to the stack.
type Site struct {
	Stage     domain.StageType `validate:"oneof=prod dev"`
	DevPrefix string           `validate:"omitempty,hostname_rfc1123"`
	// Domain is the deployed FQDN, e.g. "thatsmidnight.com" or "qa.thatsmidnight.com".
	Domain string `validate:"required,fqdn"`
	// ZoneName is the apex the hosted zone serves.
	ZoneName string `validate:"required,fqdn"`
	// Aliases are the viewer certificate CNAMEs. Domain is always first.
	Aliases    []string `validate:"required,min=1,dive,fqdn"`
	BucketName string   `validate:"required,min=3,max=63"`
	AssetPath  string   `validate:"required"`

	DistributionPaths []string `validate:"required,min=1,dive,startswith=/"`
	DefaultRootObject string   `validate:"required"`

	OriginAccess originaccess.Kind `validate:"oneof=oai oac"`
	OAC          sitefile.OACSettings
	PriceClass   string `validate:"omitempty,oneof=PriceClass_100 PriceClass_200 PriceClass_All"`

	// HostedZoneID enables DNS validation and alias records when set.
	HostedZoneID string
	// CertificateArn imports an existing certificate instead of issuing one.
	CertificateArn string `validate:"omitempty,startswith=arn:"`
	AllowIndexing  bool
}

var validate = validator.New()

// Validate checks field constraints.
func (s Site) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid site config: %w", err)
	}
	return nil
}

// LoadSite resolves the site configuration for the stage selected in
// context. Precedence per field: site file entry for the stage, then
// environment, then context, then built-in defaults.
func LoadSite(scope constructs.Construct, vars EnvironmentVariables) (Site, error) {
	file, err := sitefile.LoadConfig(GetSiteConfigPath(scope))
	if err != nil {
		return Site{}, err
	}

	stage := GetStage(scope)
	stageCfg := sitefile.GetConfigForStage(file, stage)
	if stageCfg == nil {
		stageCfg = &sitefile.StageConfig{}
	}

	return BuildSite(SiteInputs{
		Stage:        stage,
		DevPrefix:    GetDevPrefix(scope),
		AssetPath:    GetAssetPath(scope),
		OriginAccess: GetOriginAccessKind(scope),
		Vars:         vars,
		File:         *stageCfg,
	})
}

// SiteInputs are the raw sources BuildSite merges.
type SiteInputs struct {
	Stage        domain.StageType
	DevPrefix    string
	AssetPath    string
	OriginAccess originaccess.Kind
	Vars         EnvironmentVariables
	File         sitefile.StageConfig
}

// BuildSite merges in and validates the result.
func BuildSite(in SiteInputs) (Site, error) {
	if in.Stage == "" {
		in.Stage = domain.StageProd
	}
	if in.Stage == domain.StageProd && in.DevPrefix != "" {
		return Site{}, fmt.Errorf("invalid site config: devPrefix %q is only allowed for dev stages", in.DevPrefix)
	}
	if in.Stage == domain.StageDev && in.DevPrefix == "" {
		return Site{}, fmt.Errorf("invalid site config: dev stages require a devPrefix")
	}

	f := in.File
	spec := domain.Spec{Root: f.Domain, Stage: in.Stage, DevPrefix: in.DevPrefix}
	fqdn := *spec.FQDN()
	zoneName := *domain.Spec{Root: f.Domain, Stage: domain.StageProd}.FQDN()

	aliases := []string{fqdn}
	if f.IncludeWWW != nil && *f.IncludeWWW {
		aliases = append(aliases, *spec.WWW())
	}
	aliases = lo.Uniq(append(aliases, f.Aliases...))

	originAccess := in.OriginAccess
	if f.OriginAccess != "" {
		kind, err := originaccess.ParseKind(f.OriginAccess)
		if err != nil {
			return Site{}, fmt.Errorf("invalid site config: %w", err)
		}
		originAccess = kind
	}
	if originAccess == "" {
		originAccess = originaccess.KindOAI
	}

	distributionPaths := f.DistributionPaths
	if len(distributionPaths) == 0 {
		distributionPaths = []string{DefaultDistributionPath}
	}

	allowIndexing := in.Stage == domain.StageProd
	if f.AllowIndexing != nil {
		allowIndexing = *f.AllowIndexing
	}

	oac := sitefile.OACSettings{}
	if f.OAC != nil {
		oac = *f.OAC
	}

	site := Site{
		Stage:             in.Stage,
		DevPrefix:         in.DevPrefix,
		Domain:            fqdn,
		ZoneName:          zoneName,
		Aliases:           aliases,
		BucketName:        lo.CoalesceOrEmpty(f.BucketName, fqdn),
		AssetPath:         lo.CoalesceOrEmpty(f.AssetPath, in.AssetPath, DefaultAssetPath),
		DistributionPaths: distributionPaths,
		DefaultRootObject: lo.CoalesceOrEmpty(f.DefaultRootObject, DefaultRootObject),
		OriginAccess:      originAccess,
		OAC:               oac,
		PriceClass:        f.PriceClass,
		HostedZoneID:      lo.CoalesceOrEmpty(f.HostedZoneID, in.Vars.HostedZoneID),
		CertificateArn:    lo.CoalesceOrEmpty(f.CertificateArn, in.Vars.CertificateArn),
		AllowIndexing:     allowIndexing,
	}
	if err := site.Validate(); err != nil {
		return Site{}, err
	}
	return site, nil
}
