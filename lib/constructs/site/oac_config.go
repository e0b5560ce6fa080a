package site

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/thatsmidnight/website/infra/lib/utils"
)

// OriginAccessControlOriginType is the kind of origin an OAC signs requests for.
type OriginAccessControlOriginType string

const (
	OriginTypeMediaStore OriginAccessControlOriginType = "mediastore"
	OriginTypeS3         OriginAccessControlOriginType = "s3"
)

func OriginAccessControlOriginTypes() []OriginAccessControlOriginType {
	return []OriginAccessControlOriginType{OriginTypeMediaStore, OriginTypeS3}
}

func OriginAccessControlOriginTypeValues() []string {
	return utils.StringValues(OriginAccessControlOriginTypes())
}

func ParseOriginAccessControlOriginType(s string) (OriginAccessControlOriginType, error) {
	if !utils.IsMember(OriginAccessControlOriginTypes(), s) {
		return "", fmt.Errorf("invalid origin access control origin type %q", s)
	}
	return OriginAccessControlOriginType(s), nil
}

// OriginAccessControlSigningBehavior decides when CloudFront signs origin requests.
type OriginAccessControlSigningBehavior string

const (
	SigningAlways     OriginAccessControlSigningBehavior = "always"
	SigningNever      OriginAccessControlSigningBehavior = "never"
	SigningNoOverride OriginAccessControlSigningBehavior = "no-override"
)

func OriginAccessControlSigningBehaviors() []OriginAccessControlSigningBehavior {
	return []OriginAccessControlSigningBehavior{SigningAlways, SigningNever, SigningNoOverride}
}

func OriginAccessControlSigningBehaviorValues() []string {
	return utils.StringValues(OriginAccessControlSigningBehaviors())
}

func ParseOriginAccessControlSigningBehavior(s string) (OriginAccessControlSigningBehavior, error) {
	if !utils.IsMember(OriginAccessControlSigningBehaviors(), s) {
		return "", fmt.Errorf("invalid origin access control signing behavior %q", s)
	}
	return OriginAccessControlSigningBehavior(s), nil
}

// SigningProtocolSigV4 is the only protocol CloudFront supports.
const SigningProtocolSigV4 = "sigv4"

// OACConfigProps are the caller-facing settings of an origin access control.
// Nil fields take their default.
type OACConfigProps struct {
	Name            *string
	OriginType      *string
	SigningBehavior *string
	SigningProtocol *string
	Description     *string
}

// OACConfig is the resolved form of OACConfigProps. Every field is concrete.
type OACConfig struct {
	Name            string                             `validate:"required,max=64"`
	OriginType      OriginAccessControlOriginType      `validate:"oneof=mediastore s3"`
	SigningBehavior OriginAccessControlSigningBehavior `validate:"oneof=always never no-override"`
	SigningProtocol string                             `validate:"eq=sigv4"`
	Description     string                             `validate:"max=256"`
}

var validate = validator.New()

// NewOACConfig resolves defaults and validates the result. A field set to the
// empty string counts as unset and also gets its default.
func NewOACConfig(props OACConfigProps) (OACConfig, error) {
	cfg := OACConfig{
		Name:            orDefault(props.Name, ""),
		OriginType:      OriginAccessControlOriginType(orDefault(props.OriginType, string(OriginTypeS3))),
		SigningBehavior: OriginAccessControlSigningBehavior(orDefault(props.SigningBehavior, string(SigningAlways))),
		SigningProtocol: orDefault(props.SigningProtocol, SigningProtocolSigV4),
		Description:     orDefault(props.Description, ""),
	}
	if err := validate.Struct(cfg); err != nil {
		return OACConfig{}, fmt.Errorf("invalid origin access control config: %w", err)
	}
	return cfg, nil
}

func orDefault(v *string, def string) string {
	return lo.CoalesceOrEmpty(lo.FromPtr(v), def)
}
