// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package labeler

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimitTransport is an http.RoundTripper layer that holds every request
// until the limiter releases a token.
type RateLimitTransport struct {
	limiter *rate.Limiter
	base    http.RoundTripper
}

func (t *RateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}

// NewRateLimitTransport returns a transport limited to the given rate and
// burst, delegating to base once a token is available.
func NewRateLimitTransport(limit rate.Limit, tokens int, base http.RoundTripper) *RateLimitTransport {
	return &RateLimitTransport{rate.NewLimiter(limit, tokens), base}
}
