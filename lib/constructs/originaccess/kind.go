package originaccess

import (
	"fmt"
	"strings"

	"github.com/thatsmidnight/website/infra/lib/utils"
)

// Kind represents how CloudFront authenticates to the site bucket.
type Kind string

const (
	// KindOAI uses a legacy origin access identity (canonical user principal).
	KindOAI Kind = "oai"
	// KindOAC uses an origin access control (SigV4 signed requests).
	KindOAC Kind = "oac"
)

// Kinds lists the supported kinds in declaration order.
func Kinds() []Kind {
	return []Kind{KindOAI, KindOAC}
}

func KindValues() []string {
	return utils.StringValues(Kinds())
}

// ParseKind converts a raw string into a Kind, returning an error for invalid values.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !utils.IsMember(Kinds(), s) {
		return "", fmt.Errorf("invalid origin access kind %q", s)
	}
	return Kind(s), nil
}

// UsesIdentity reports whether the kind needs a CloudFrontOriginAccessIdentity.
func (k Kind) UsesIdentity() bool {
	return k == KindOAI
}
