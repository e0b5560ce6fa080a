package testhelpers

import (
	"reflect"

	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
)

// BucketPolicyStatements returns every statement of every
// AWS::S3::BucketPolicy in the template.
func BucketPolicyStatements(template assertions.Template) []map[string]interface{} {
	root, _ := (*template.ToJSON())["Resources"].(map[string]interface{})

	var out []map[string]interface{}
	for _, raw := range root {
		res, ok := raw.(map[string]interface{})
		if !ok || res["Type"] != "AWS::S3::BucketPolicy" {
			continue
		}
		props, _ := res["Properties"].(map[string]interface{})
		doc, _ := props["PolicyDocument"].(map[string]interface{})
		stmts, _ := doc["Statement"].([]interface{})
		for _, s := range stmts {
			if m, ok := s.(map[string]interface{}); ok {
				out = append(out, m)
			}
		}
	}
	return out
}

// StatementsWithActions keeps the statements whose Action equals actions
// exactly, order included. A single action rendered as a plain string counts
// as a one-element list.
func StatementsWithActions(statements []map[string]interface{}, actions []string) []map[string]interface{} {
	want := make([]interface{}, len(actions))
	for i, a := range actions {
		want[i] = a
	}

	var out []map[string]interface{}
	for _, s := range statements {
		got := s["Action"]
		if a, ok := got.(string); ok {
			got = []interface{}{a}
		}
		if reflect.DeepEqual(got, want) {
			out = append(out, s)
		}
	}
	return out
}

// PrincipalKey returns the single key of a statement's Principal block, e.g.
// "CanonicalUser" or "Service".
func PrincipalKey(statement map[string]interface{}) string {
	p, _ := statement["Principal"].(map[string]interface{})
	for k := range p {
		return k
	}
	return ""
}
