// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package labeler

import (
	"context"
	"net/http"

	"github.com/die-net/lrucache"
	"github.com/google/go-github/v39/github"
	"github.com/m4ns0ur/httpcache"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/mattermost/mattermost-column-labeler/metrics"
)

type IssuesService interface {
	AddLabelsToIssue(ctx context.Context, owner string, repo string, number int, labels []string) ([]*github.Label, *github.Response, error)
	ListLabelsByIssue(ctx context.Context, owner string, repo string, number int, opts *github.ListOptions) ([]*github.Label, *github.Response, error)
	RemoveLabelForIssue(ctx context.Context, owner string, repo string, number int, label string) (*github.Response, error)
}

type ProjectsService interface {
	ListProjectCards(ctx context.Context, columnID int64, opts *github.ProjectCardListOptions) ([]*github.ProjectCard, *github.Response, error)
	ListProjectColumns(ctx context.Context, projectID int64, opts *github.ListOptions) ([]*github.ProjectColumn, *github.Response, error)
}

type RepositoriesService interface {
	ListProjects(ctx context.Context, owner string, repo string, opts *github.ProjectListOptions) ([]*github.Project, *github.Response, error)
}

// GithubClient wraps the github.Client with relevant interfaces.
type GithubClient struct {
	client *github.Client

	Issues       IssuesService
	Projects     ProjectsService
	Repositories RepositoriesService
}

const (
	githubRequestsPerSecond = 10
	githubRequestsBurst     = 10
	githubCacheSize         = 8 * 1024 // KB
)

// NewGithubClient builds the client on a layered transport: request metrics
// on the outside, then an in-memory conditional-request cache, then the rate
// limiter, then the token source. The cache lives and dies with the process.
func NewGithubClient(accessToken string, metricsProvider metrics.Provider) *GithubClient {
	authTransport := &oauth2.Transport{
		Base:   http.DefaultTransport,
		Source: oauth2.ReuseTokenSource(nil, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})),
	}
	limitedTransport := NewRateLimitTransport(rate.Limit(githubRequestsPerSecond), githubRequestsBurst, authTransport)

	cachedTransport := httpcache.NewTransport(lrucache.New(githubCacheSize*1024, 0))
	cachedTransport.Transport = limitedTransport

	client := github.NewClient(metrics.NewTransport(cachedTransport, metricsProvider).Client())

	return &GithubClient{
		client:       client,
		Issues:       client.Issues,
		Projects:     client.Projects,
		Repositories: client.Repositories,
	}
}

func (c *GithubClient) RateLimits(ctx context.Context) (*github.RateLimits, *github.Response, error) {
	return c.client.RateLimits(ctx)
}
