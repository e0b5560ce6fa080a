package site

import (
	"errors"
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2/awss3deployment"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// GeneratedFile is an object rendered at synth time and uploaded next to the assets.
type GeneratedFile struct {
	Key     string
	Content string
}

type SiteDeploymentProps struct {
	Sources           []awss3deployment.ISource
	GeneratedFiles    []GeneratedFile
	DestinationBucket *SiteBucket
	Distribution      *SiteDistribution
	// DistributionPaths are invalidated once the upload finishes.
	DistributionPaths []string
}

type SiteDeployment struct {
	Deployment awss3deployment.BucketDeployment
}

// NewSiteDeployment uploads the sources to the bucket and invalidates the
// distribution cache.
func NewSiteDeployment(scope constructs.Construct, id string, props *SiteDeploymentProps) (*SiteDeployment, error) {
	if props == nil || props.DestinationBucket == nil || props.DestinationBucket.Bucket == nil {
		return nil, fmt.Errorf("deployment %s: %w", id, ErrBucketNotConstructed)
	}
	sources := append([]awss3deployment.ISource(nil), props.Sources...)
	for _, f := range props.GeneratedFiles {
		sources = append(sources, awss3deployment.Source_Data(jsii.String(f.Key), jsii.String(f.Content), nil))
	}
	if len(sources) == 0 {
		return nil, errors.New("deployment " + id + ": no sources")
	}

	deployProps := &awss3deployment.BucketDeploymentProps{
		Sources:           &sources,
		DestinationBucket: props.DestinationBucket.Bucket,
	}
	if props.Distribution != nil {
		deployProps.Distribution = props.Distribution.Distribution
		if len(props.DistributionPaths) > 0 {
			deployProps.DistributionPaths = jsii.Strings(props.DistributionPaths...)
		}
	}

	return &SiteDeployment{
		Deployment: awss3deployment.NewBucketDeployment(scope, jsii.String(id), deployProps),
	}, nil
}
