package config

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// Constants for CDK parameter names
const (
	DefaultRootObjectParamName = "defaultRootObject"
)

// DefaultRootObject is served for requests to "/".
const DefaultRootObject = "index.html"

type CDKParams struct {
	DefaultRootObject awscdk.CfnParameter
}

// NewCDKParams declares the deploy-time parameters of the site stack.
// fallback becomes the parameter default; empty means DefaultRootObject.
func NewCDKParams(scope constructs.Construct, fallback string) CDKParams {
	if fallback == "" {
		fallback = DefaultRootObject
	}
	defaultRootObject := awscdk.NewCfnParameter(scope, jsii.String(DefaultRootObjectParamName), &awscdk.CfnParameterProps{
		Type:        jsii.String("String"),
		Description: jsii.String("Object CloudFront returns for requests to the root URL"),
		Default:     jsii.String(fallback),
	})

	return CDKParams{
		DefaultRootObject: defaultRootObject,
	}
}
