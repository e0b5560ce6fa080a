package config

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws/endpoints"
	"github.com/thatsmidnight/website/infra/lib/utils"
)

var ErrUnknownRegion = errors.New("unknown AWS region")

// StackRegion is a region the site stack may be deployed to. CloudFront only
// accepts ACM certificates from us-east-1, so that is the only member.
type StackRegion string

const (
	RegionUSEast1 StackRegion = "us-east-1"
)

// StackRegions returns every StackRegion in declaration order.
func StackRegions() []StackRegion {
	return []StackRegion{RegionUSEast1}
}

// StackRegionValues returns the literal values of StackRegions.
func StackRegionValues() []string {
	return utils.StringValues(StackRegions())
}

// ValidateRegion checks region against the SDK's partition metadata (known
// regions and each partition's region pattern), so malformed names fail at
// synth time instead of at deploy time.
func ValidateRegion(region string) error {
	if _, ok := endpoints.PartitionForRegion(endpoints.DefaultPartitions(), region); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}
	return nil
}

// IsEdgeRegion reports whether certificates issued in region can be attached
// to CloudFront directly.
func IsEdgeRegion(region string) bool {
	return region == string(RegionUSEast1)
}
