package config

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
)

// IsStackInSynthesis reports whether assets of the stack owning scope will be
// staged in this run. `cdk list` and stack-selective runs skip bundling, so
// checks on local asset paths only matter when this is true.
func IsStackInSynthesis(scope constructs.Construct) bool {
	stack := awscdk.Stack_Of(scope)
	if stack == nil {
		return false
	}
	return *stack.BundlingRequired()
}
