package site

import "github.com/thatsmidnight/website/infra/lib/utils"

// S3ResourcePolicyAction is an S3 action granted to CloudFront on the site bucket.
type S3ResourcePolicyAction string

const (
	ActionGetObject S3ResourcePolicyAction = "s3:GetObject*"
	ActionGetBucket S3ResourcePolicyAction = "s3:GetBucket*"
	ActionListAll   S3ResourcePolicyAction = "s3:List*"
)

// S3ResourcePolicyActions is the read/list set CloudFront needs, in
// declaration order.
func S3ResourcePolicyActions() []S3ResourcePolicyAction {
	return []S3ResourcePolicyAction{ActionGetObject, ActionGetBucket, ActionListAll}
}

func S3ResourcePolicyActionValues() []string {
	return utils.StringValues(S3ResourcePolicyActions())
}
