package config

import (
	"fmt"

	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/thatsmidnight/website/infra/config/domain"
)

// Context keys read from cdk.json or `--context key=value`.
const (
	StackNameContextKey  = "stackName"
	StageContextKey      = "stage"
	DevPrefixContextKey  = "devPrefix"
	AssetPathContextKey  = "assetPath"
	SiteConfigContextKey = "siteConfig"
)

// Context defaults.
const (
	DefaultStackName      = "my-static-website-stack"
	DefaultAssetPath      = "../src"
	DefaultSiteConfigPath = "site.yaml"
)

// contextString returns the string context value for key, or def when unset.
// A non-string value is a misconfiguration and panics.
func contextString(scope constructs.Construct, key string, def string) string {
	raw := scope.Node().TryGetContext(jsii.String(key))
	if raw == nil {
		return def
	}
	v, ok := raw.(string)
	if !ok {
		panic(fmt.Sprintf("context %q must be a string, got %T", key, raw))
	}
	if v == "" {
		return def
	}
	return v
}

// StackName returns the deployed stack name; change it with
// `--context stackName=...`.
func StackName(scope constructs.Construct) string {
	return contextString(scope, StackNameContextKey, DefaultStackName)
}

// GetStage reads the deployment stage. Absence means prod; an unknown value panics.
func GetStage(scope constructs.Construct) domain.StageType {
	raw := contextString(scope, StageContextKey, string(domain.StageProd))
	stage, ok := domain.ParseStage(raw)
	if !ok {
		panic(fmt.Sprintf("invalid %s=%q – allowed: prod | dev", StageContextKey, raw))
	}
	return stage
}

// GetDevPrefix reads the label prepended to the root domain for dev stages.
func GetDevPrefix(scope constructs.Construct) string {
	return contextString(scope, DevPrefixContextKey, "")
}

// GetAssetPath returns the local directory holding the site's static files.
func GetAssetPath(scope constructs.Construct) string {
	return contextString(scope, AssetPathContextKey, DefaultAssetPath)
}

// GetSiteConfigPath returns the path of the optional per-stage site file.
func GetSiteConfigPath(scope constructs.Construct) string {
	return contextString(scope, SiteConfigContextKey, DefaultSiteConfigPath)
}
