package cdklogger

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"
)

func TestFormat_Prefix(t *testing.T) {
	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("SiteStack"), nil)
	child := constructs.NewConstruct(stack, jsii.String("Bucket"))

	// redundant prefix is dropped
	assert.Equal(t, "hello 1", Format(child, "Bucket", "hello %d", 1))
	// unrelated id is kept
	assert.Equal(t, "[Other] hello", Format(child, "Other", "hello"))
	// no id, no prefix
	assert.Equal(t, "plain", Format(stack, "", "plain"))
	// stack path equals the id
	assert.Equal(t, "top", Format(stack, "SiteStack", "top"))
}

func TestLogError_AddsAnnotation(t *testing.T) {
	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("SiteStack"), nil)

	LogWarning(stack, "", "heads up")
	LogError(stack, "", "boom %s", "now")

	annotations := assertions.Annotations_FromStack(stack)
	annotations.HasWarning(jsii.String("/SiteStack"), jsii.String("heads up"))
	annotations.HasError(jsii.String("/SiteStack"), jsii.String("boom now"))
}
