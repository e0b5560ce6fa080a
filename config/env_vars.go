package config

import (
	"errors"
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/caarlos0/env/v11"
	"github.com/samber/lo"
)

var (
	ErrAccountUnresolved = errors.New("AWS account could not be resolved: pass it explicitly or set CDK_DEPLOY_ACCOUNT, CDK_DEFAULT_ACCOUNT or AWS_ACCOUNT_ID")
	ErrRegionUnresolved  = errors.New("AWS region could not be resolved: pass it explicitly or set CDK_DEPLOY_REGION or CDK_DEFAULT_REGION")
)

// EnvironmentVariables are read once at the entry point and passed down.
// None of them is required at parse time; missing values surface when the
// account/region pair is validated.
type EnvironmentVariables struct {
	AccountID       string `env:"AWS_ACCOUNT_ID"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	HostedZoneID    string `env:"HOSTED_ZONE_ID"`
	// CertificateArn imports an existing ACM certificate instead of issuing one
	CertificateArn string `env:"CERTIFICATE_ARN"`

	DeployAccount  string `env:"CDK_DEPLOY_ACCOUNT"`
	DeployRegion   string `env:"CDK_DEPLOY_REGION"`
	DefaultAccount string `env:"CDK_DEFAULT_ACCOUNT"`
	DefaultRegion  string `env:"CDK_DEFAULT_REGION"`
}

// LoadEnvironmentVariables parses T from the process environment.
func LoadEnvironmentVariables[T any]() (T, error) {
	var envObj T
	if err := env.Parse(&envObj); err != nil {
		return envObj, fmt.Errorf("parsing environment: %w", err)
	}
	return envObj, nil
}

// LoadEnvironmentVariablesFrom parses T from the given map instead of the
// process environment.
func LoadEnvironmentVariablesFrom[T any](vars map[string]string) (T, error) {
	var envObj T
	if err := env.ParseWithOptions(&envObj, env.Options{Environment: vars}); err != nil {
		return envObj, fmt.Errorf("parsing environment: %w", err)
	}
	return envObj, nil
}

// HasCredentials reports whether both halves of an access key are present.
func (v EnvironmentVariables) HasCredentials() bool {
	return v.AccessKeyID != "" && v.SecretAccessKey != ""
}

// AccountRegion is the account/region pair every resource of a stack shares.
// A nil field means the value could not be resolved.
type AccountRegion struct {
	Account *string
	Region  *string
}

// ResolveAccountRegion applies the fallback chain
// explicit → CDK_DEPLOY_* → CDK_DEFAULT_* (→ AWS_ACCOUNT_ID for the account).
func ResolveAccountRegion(account, region string, vars EnvironmentVariables) AccountRegion {
	return AccountRegion{
		Account: coalesce(account, vars.DeployAccount, vars.DefaultAccount, vars.AccountID),
		Region:  coalesce(region, vars.DeployRegion, vars.DefaultRegion),
	}
}

func coalesce(values ...string) *string {
	v, ok := lo.Coalesce(values...)
	if !ok {
		return nil
	}
	return &v
}

// Validate fails when either half is unresolved or the region is unknown.
func (ar AccountRegion) Validate() error {
	if ar.Account == nil {
		return ErrAccountUnresolved
	}
	if ar.Region == nil {
		return ErrRegionUnresolved
	}
	return ValidateRegion(*ar.Region)
}

// Environment converts the pair into CDK stack props.
func (ar AccountRegion) Environment() *awscdk.Environment {
	return &awscdk.Environment{
		Account: ar.Account,
		Region:  ar.Region,
	}
}
