package testhelpers

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
)

const (
	TestAccount = "123456789012"
	TestRegion  = "us-east-1"
)

// NewTestStack returns a stack bound to TestAccount/TestRegion inside a fresh app.
func NewTestStack(id string) (awscdk.App, awscdk.Stack) {
	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String(id), &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: jsii.String(TestAccount),
			Region:  jsii.String(TestRegion),
		},
	})
	return app, stack
}
