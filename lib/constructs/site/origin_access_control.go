package site

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// SiteOriginAccessControl lets CloudFront sign its requests to the bucket
// with SigV4 instead of using an origin access identity.
type SiteOriginAccessControl struct {
	Control awscloudfront.CfnOriginAccessControl
	Config  OACConfig
}

func NewSiteOriginAccessControl(scope constructs.Construct, id string, cfg OACConfig) *SiteOriginAccessControl {
	oacCfg := &awscloudfront.CfnOriginAccessControl_OriginAccessControlConfigProperty{
		Name:                          jsii.String(cfg.Name),
		OriginAccessControlOriginType: jsii.String(string(cfg.OriginType)),
		SigningBehavior:               jsii.String(string(cfg.SigningBehavior)),
		SigningProtocol:               jsii.String(cfg.SigningProtocol),
	}
	if cfg.Description != "" {
		oacCfg.Description = jsii.String(cfg.Description)
	}

	control := awscloudfront.NewCfnOriginAccessControl(scope, jsii.String(id), &awscloudfront.CfnOriginAccessControlProps{
		OriginAccessControlConfig: oacCfg,
	})
	return &SiteOriginAccessControl{Control: control, Config: cfg}
}

func (o *SiteOriginAccessControl) ID() *string {
	return o.Control.AttrId()
}
