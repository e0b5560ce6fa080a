package domain

import (
	"fmt"
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	jsii "github.com/aws/jsii-runtime-go"
	"github.com/thatsmidnight/website/infra/lib/cdklogger"
)

// HostedDomainProps holds inputs for creating a HostedDomain construct.
type HostedDomainProps struct {
	// HostedZoneID is the id of an existing public hosted zone.
	HostedZoneID string
	// ZoneName is the apex the zone serves, e.g. "thatsmidnight.com".
	ZoneName string
}

// HostedDomain imports an existing Route53 hosted zone by id so records and
// DNS-validated certificates can reference it without a context lookup.
type HostedDomain struct {
	constructs.Construct
	Zone awsroute53.IHostedZone
}

// NewHostedDomain imports the hosted zone described by props.
func NewHostedDomain(scope constructs.Construct, id string, props *HostedDomainProps) *HostedDomain {
	if props == nil || props.HostedZoneID == "" || props.ZoneName == "" {
		panic(fmt.Sprintf("HostedDomain %s requires HostedZoneID and ZoneName", id))
	}
	hdConstruct := constructs.NewConstruct(scope, jsii.String(id))
	hd := &HostedDomain{Construct: hdConstruct}

	hd.Zone = awsroute53.HostedZone_FromHostedZoneAttributes(hdConstruct, jsii.String("Zone"), &awsroute53.HostedZoneAttributes{
		HostedZoneId: jsii.String(props.HostedZoneID),
		ZoneName:     jsii.String(strings.TrimSuffix(props.ZoneName, ".")),
	})

	cdklogger.LogInfo(hdConstruct, "", "Using hosted zone %s (%s)", props.HostedZoneID, props.ZoneName)

	awscdk.NewCfnOutput(hd.Construct, jsii.String("HostedZoneId"), &awscdk.CfnOutputProps{Value: hd.Zone.HostedZoneId()})

	return hd
}

// AddAliasRecord creates an A record for the fully-qualified recordName
// pointing at target.
func (h *HostedDomain) AddAliasRecord(id string, recordName string, target awsroute53.RecordTarget) awsroute53.ARecord {
	return awsroute53.NewARecord(h.Construct, jsii.String(id), &awsroute53.ARecordProps{
		Zone:       h.Zone,
		RecordName: jsii.String(recordName),
		Target:     target,
	})
}
