package cdklogger

import (
	"fmt"
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// LogInfo adds an INFO level message to the construct's metadata.
// These messages are printed by `cdk synth`.
func LogInfo(scope constructs.Construct, constructID string, format string, args ...interface{}) {
	awscdk.Annotations_Of(scope).AddInfo(jsii.String(Format(scope, constructID, format, args...)))
}

// LogWarning adds a WARNING level message to the construct's metadata.
func LogWarning(scope constructs.Construct, constructID string, format string, args ...interface{}) {
	awscdk.Annotations_Of(scope).AddWarning(jsii.String(Format(scope, constructID, format, args...)))
}

// LogError adds an ERROR level message to the construct's metadata.
// Synthesis through the CDK toolkit fails when any error annotation exists.
func LogError(scope constructs.Construct, constructID string, format string, args ...interface{}) {
	awscdk.Annotations_Of(scope).AddError(jsii.String(Format(scope, constructID, format, args...)))
}

// Format renders the message and prefixes it with "[constructID]" unless the
// scope path already ends with that id.
func Format(scope constructs.Construct, constructID string, format string, args ...interface{}) string {
	message := fmt.Sprintf(format, args...)
	if constructID == "" {
		return message
	}
	cdkPath := "/" + *scope.Node().Path()
	if strings.HasSuffix(cdkPath, "/"+constructID) {
		return message
	}
	return fmt.Sprintf("[%s] %s", constructID, message)
}
