// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package metrics

// Stages of directive processing that can fail and get the directive skipped.
const (
	DirectiveStageResolve = "resolve"
	DirectiveStageCards   = "cards"
)

type Provider interface {
	ObserveGithubRequestDuration(handler, method, statusCode string, elapsed float64)
	IncreaseGithubCacheHits(method, handler string)
	IncreaseGithubCacheMisses(method, handler string)

	ObserveDirectiveDuration(elapsed float64)
	IncreaseDirectiveErrors(stage string)

	IncreaseLabelMutations(action string)
	IncreaseLabelMutationErrors(action string)
}
