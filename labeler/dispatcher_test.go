package labeler

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/go-github/v39/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/mattermost/mattermost-column-labeler/labeler/mocks"
	"github.com/mattermost/mattermost-column-labeler/metrics"
)

func TestDispatchBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctxInterface := reflect.TypeOf((*context.Context)(nil)).Elem()

	newLabeler := func() *Labeler {
		return &Labeler{
			GithubClient: &GithubClient{},
			Config: &Config{
				Org:    "mattertest",
				Repo:   "mattermost-server",
				Action: ActionAdd,
			},
			Metrics: metrics.NewPrometheusProvider(),
			limiter: rate.NewLimiter(rate.Inf, 0),
		}
	}

	t.Run("empty batch makes no calls", func(t *testing.T) {
		s := newLabeler()
		count := s.dispatchBatch(context.Background(), nil, []string{"bug"})
		assert.Equal(t, 0, count)
	})

	t.Run("counts every success", func(t *testing.T) {
		s := newLabeler()
		is := mocks.NewMockIssuesService(ctrl)
		is.EXPECT().
			AddLabelsToIssue(gomock.AssignableToTypeOf(ctxInterface),
				gomock.Eq("mattertest"),
				gomock.Eq("mattermost-server"),
				gomock.Any(),
				gomock.Eq([]string{"bug"}),
			).
			Times(3).
			Return(nil, okResponse(0), nil)
		s.GithubClient.Issues = is

		cards := []*github.ProjectCard{
			issueCard(1, 101),
			issueCard(2, 102),
			issueCard(3, 103),
		}
		count := s.dispatchBatch(context.Background(), cards, []string{"bug"})
		assert.Equal(t, 3, count)
	})

	t.Run("failures are counted but do not abort the batch", func(t *testing.T) {
		s := newLabeler()
		is := mocks.NewMockIssuesService(ctrl)
		is.EXPECT().
			AddLabelsToIssue(gomock.AssignableToTypeOf(ctxInterface),
				gomock.Eq("mattertest"),
				gomock.Eq("mattermost-server"),
				gomock.Eq(101),
				gomock.Eq([]string{"bug"}),
			).
			Return(nil, okResponse(0), nil)
		is.EXPECT().
			AddLabelsToIssue(gomock.AssignableToTypeOf(ctxInterface),
				gomock.Eq("mattertest"),
				gomock.Eq("mattermost-server"),
				gomock.Eq(102),
				gomock.Eq([]string{"bug"}),
			).
			Return(nil, &github.Response{}, errors.New("some error"))
		is.EXPECT().
			AddLabelsToIssue(gomock.AssignableToTypeOf(ctxInterface),
				gomock.Eq("mattertest"),
				gomock.Eq("mattermost-server"),
				gomock.Eq(103),
				gomock.Eq([]string{"bug"}),
			).
			Return(nil, okResponse(0), nil)
		s.GithubClient.Issues = is

		cards := []*github.ProjectCard{
			issueCard(1, 101),
			issueCard(2, 102),
			issueCard(3, 103),
		}
		count := s.dispatchBatch(context.Background(), cards, []string{"bug"})
		assert.Equal(t, 2, count)
	})

	t.Run("bad issue reference only skips that card", func(t *testing.T) {
		s := newLabeler()
		is := mocks.NewMockIssuesService(ctrl)
		is.EXPECT().
			AddLabelsToIssue(gomock.AssignableToTypeOf(ctxInterface),
				gomock.Eq("mattertest"),
				gomock.Eq("mattermost-server"),
				gomock.Any(),
				gomock.Eq([]string{"bug"}),
			).
			Times(2).
			Return(nil, okResponse(0), nil)
		s.GithubClient.Issues = is

		badCard := &github.ProjectCard{
			ID:         github.Int64(2),
			ContentURL: github.String("https://api.github.com/repos/mattertest/mattermost-server/issues/abc"),
		}
		cards := []*github.ProjectCard{
			issueCard(1, 101),
			badCard,
			issueCard(3, 103),
		}
		count := s.dispatchBatch(context.Background(), cards, []string{"bug"})
		assert.Equal(t, 2, count)
	})
}

func TestBatchLimiter(t *testing.T) {
	t.Run("small batches are unthrottled", func(t *testing.T) {
		limiter := batchLimiter(throttleThreshold - 1)
		assert.Equal(t, rate.Inf, limiter.Limit())
	})

	t.Run("large batches are spaced out", func(t *testing.T) {
		limiter := batchLimiter(throttleThreshold)
		assert.Equal(t, rate.Every(throttleInterval), limiter.Limit())
		assert.Equal(t, 1, limiter.Burst())
	})

	t.Run("unthrottled limiter does not wait", func(t *testing.T) {
		limiter := batchLimiter(1)
		start := time.Now()
		for i := 0; i < 10; i++ {
			require.NoError(t, limiter.Wait(context.Background()))
		}
		assert.Less(t, time.Since(start), time.Second)
	})
}
