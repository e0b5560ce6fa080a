package utils

import (
	"github.com/aws/jsii-runtime-go"
	"github.com/samber/lo"
)

// StringValues returns the literal values of the given enumeration members,
// preserving their order.
func StringValues[T ~string](members []T) []string {
	return lo.Map(members, func(m T, _ int) string {
		return string(m)
	})
}

// JsiiValues converts enumeration members into the *[]*string shape most CDK
// props expect.
func JsiiValues[T ~string](members []T) *[]*string {
	return jsii.Strings(StringValues(members)...)
}

// IsMember reports whether raw is the literal value of one of members.
func IsMember[T ~string](members []T, raw string) bool {
	return lo.Contains(members, T(raw))
}
