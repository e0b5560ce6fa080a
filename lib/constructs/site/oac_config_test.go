package site

import (
	"testing"

	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumValues(t *testing.T) {
	assert.Equal(t, []string{"s3:GetObject*", "s3:GetBucket*", "s3:List*"}, S3ResourcePolicyActionValues())
	assert.Len(t, S3ResourcePolicyActionValues(), len(S3ResourcePolicyActions()))

	assert.Equal(t, []string{"mediastore", "s3"}, OriginAccessControlOriginTypeValues())
	assert.Equal(t, []string{"always", "never", "no-override"}, OriginAccessControlSigningBehaviorValues())
}

func TestParseOriginAccessControlEnums(t *testing.T) {
	ot, err := ParseOriginAccessControlOriginType("s3")
	require.NoError(t, err)
	assert.Equal(t, OriginTypeS3, ot)
	_, err = ParseOriginAccessControlOriginType("lambda")
	assert.Error(t, err)

	sb, err := ParseOriginAccessControlSigningBehavior("no-override")
	require.NoError(t, err)
	assert.Equal(t, SigningNoOverride, sb)
	_, err = ParseOriginAccessControlSigningBehavior("sometimes")
	assert.Error(t, err)
}

func TestNewOACConfig_Defaults(t *testing.T) {
	cfg, err := NewOACConfig(OACConfigProps{Name: jsii.String("site-oac")})
	require.NoError(t, err)

	assert.Equal(t, OACConfig{
		Name:            "site-oac",
		OriginType:      OriginTypeS3,
		SigningBehavior: SigningAlways,
		SigningProtocol: SigningProtocolSigV4,
		Description:     "",
	}, cfg)
}

// Empty strings are treated exactly like nil.
func TestNewOACConfig_EmptyMeansDefault(t *testing.T) {
	cfg, err := NewOACConfig(OACConfigProps{
		Name:            jsii.String("site-oac"),
		OriginType:      jsii.String(""),
		SigningBehavior: jsii.String(""),
		SigningProtocol: jsii.String(""),
	})
	require.NoError(t, err)
	assert.Equal(t, OriginTypeS3, cfg.OriginType)
	assert.Equal(t, SigningAlways, cfg.SigningBehavior)
	assert.Equal(t, SigningProtocolSigV4, cfg.SigningProtocol)
}

func TestNewOACConfig_Explicit(t *testing.T) {
	cfg, err := NewOACConfig(OACConfigProps{
		Name:            jsii.String("media"),
		OriginType:      jsii.String("mediastore"),
		SigningBehavior: jsii.String("never"),
		Description:     jsii.String("media origin"),
	})
	require.NoError(t, err)
	assert.Equal(t, OriginTypeMediaStore, cfg.OriginType)
	assert.Equal(t, SigningNever, cfg.SigningBehavior)
	assert.Equal(t, "media origin", cfg.Description)
}

func TestNewOACConfig_Invalid(t *testing.T) {
	for name, props := range map[string]OACConfigProps{
		"missing name":    {},
		"bad origin type": {Name: jsii.String("x"), OriginType: jsii.String("ec2")},
		"bad behavior":    {Name: jsii.String("x"), SigningBehavior: jsii.String("no_override")},
		"bad protocol":    {Name: jsii.String("x"), SigningProtocol: jsii.String("sigv2")},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewOACConfig(props)
			assert.ErrorContains(t, err, "invalid origin access control config")
		})
	}
}
