package config

import (
	"fmt"

	"github.com/aws/constructs-go/constructs/v10"
	"github.com/thatsmidnight/website/infra/lib/constructs/originaccess"
)

// OriginAccessContextKey selects how CloudFront authenticates to the bucket.
const OriginAccessContextKey = "originAccess"

// GetOriginAccessKind reads "originAccess" from CDK context at synth time.
// • Absence → default "oai"
// • Bad value → panic with a clear message.
func GetOriginAccessKind(scope constructs.Construct) originaccess.Kind {
	raw := contextString(scope, OriginAccessContextKey, string(originaccess.KindOAI))

	kind, err := originaccess.ParseKind(raw)
	if err != nil {
		panic(fmt.Errorf("invalid %s=%q – allowed: oai | oac", OriginAccessContextKey, raw))
	}
	return kind
}
