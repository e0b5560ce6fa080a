package sitefile

// OACSettings overrides the origin access control defaults. Nil fields keep
// the default.
type OACSettings struct {
	Name            *string `yaml:"name,omitempty" toml:"name,omitempty"`
	OriginType      *string `yaml:"originType,omitempty" toml:"originType,omitempty"`
	SigningBehavior *string `yaml:"signingBehavior,omitempty" toml:"signingBehavior,omitempty"`
	SigningProtocol *string `yaml:"signingProtocol,omitempty" toml:"signingProtocol,omitempty"`
	Description     *string `yaml:"description,omitempty" toml:"description,omitempty"`
}

// StageConfig holds the site settings for one deployment stage. Zero values
// mean "not set" and fall back to context or built-in defaults.
type StageConfig struct {
	// Domain replaces the root domain, e.g. "example.com".
	Domain string `yaml:"domain" toml:"domain"`
	// IncludeWWW adds "www.<fqdn>" to the viewer aliases.
	IncludeWWW *bool `yaml:"includeWww,omitempty" toml:"includeWww,omitempty"`
	// Aliases are extra CNAMEs served by the distribution.
	Aliases    []string `yaml:"aliases,omitempty" toml:"aliases,omitempty"`
	BucketName string   `yaml:"bucketName,omitempty" toml:"bucketName,omitempty"`
	AssetPath  string   `yaml:"assetPath,omitempty" toml:"assetPath,omitempty"`
	// DistributionPaths are invalidated after each deployment.
	DistributionPaths []string `yaml:"distributionPaths,omitempty" toml:"distributionPaths,omitempty"`
	DefaultRootObject string   `yaml:"defaultRootObject,omitempty" toml:"defaultRootObject,omitempty"`
	// OriginAccess is "oai" or "oac".
	OriginAccess   string `yaml:"originAccess,omitempty" toml:"originAccess,omitempty"`
	PriceClass     string `yaml:"priceClass,omitempty" toml:"priceClass,omitempty"`
	HostedZoneID   string `yaml:"hostedZoneId,omitempty" toml:"hostedZoneId,omitempty"`
	CertificateArn string `yaml:"certificateArn,omitempty" toml:"certificateArn,omitempty"`
	// AllowIndexing controls the generated robots.txt.
	AllowIndexing *bool        `yaml:"allowIndexing,omitempty" toml:"allowIndexing,omitempty"`
	OAC           *OACSettings `yaml:"oac,omitempty" toml:"oac,omitempty"`
}

// Config is the root structure of the site file.
// It maps stages (e.g., "prod", "dev") to their settings.
type Config map[string]StageConfig
