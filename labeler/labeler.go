// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package labeler

import (
	"bytes"
	"context"
	"time"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/mattermost/mattermost-column-labeler/metrics"
	"github.com/mattermost/mattermost-column-labeler/model"
)

// Labeler drives one run: validate the directives, then for each one resolve
// the column, collect its issue cards and dispatch the label mutations.
type Labeler struct {
	Config       *Config
	GithubClient *GithubClient
	Metrics      metrics.Provider

	// limiter overrides the per-batch spacing policy when set. Tests inject
	// an unlimited limiter to avoid wall-clock delays.
	limiter *rate.Limiter
}

func New(config *Config, metricsProvider metrics.Provider) (*Labeler, error) {
	if err := config.IsValid(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Labeler{
		Config:       config,
		GithubClient: NewGithubClient(config.GithubAccessToken, metricsProvider),
		Metrics:      metricsProvider,
	}, nil
}

// Run processes every directive in order. A directive that fails to resolve
// or paginate is logged and skipped; only an invalid overall configuration
// makes the run itself fail.
func (l *Labeler) Run(ctx context.Context) error {
	directives, err := model.DirectivesFromJSON(bytes.NewReader(l.Config.Directives))
	if err != nil {
		return errors.Wrap(err, "invalid directive configuration")
	}

	var processed, skipped, updated int
	for i, directive := range directives {
		l.checkTokenReserve(ctx)
		start := time.Now()

		columnID, err := l.resolveColumnID(ctx, directive)
		if err != nil {
			mlog.Error("Skipping directive, could not resolve column",
				mlog.Int("directive", i),
				mlog.String("project", directive.ProjectName),
				mlog.String("column", directive.ColumnName),
				mlog.Err(err))
			l.Metrics.IncreaseDirectiveErrors(metrics.DirectiveStageResolve)
			skipped++
			continue
		}

		cards, err := l.getCardsInColumn(ctx, columnID)
		if err != nil {
			mlog.Error("Skipping directive, could not list cards",
				mlog.Int("directive", i),
				mlog.Int64("column", columnID),
				mlog.Err(err))
			l.Metrics.IncreaseDirectiveErrors(metrics.DirectiveStageCards)
			skipped++
			continue
		}

		count := l.dispatchBatch(ctx, cards, directive.Labels)
		l.Metrics.ObserveDirectiveDuration(float64(time.Since(start)) / float64(time.Second))
		mlog.Info("Processed directive",
			mlog.Int("directive", i),
			mlog.Int64("column", columnID),
			mlog.Int("cards", len(cards)),
			mlog.Int("updated", count))
		processed++
		updated += count
	}

	mlog.Info("Run complete",
		mlog.Int("directives", processed),
		mlog.Int("skipped", skipped),
		mlog.Int("issues_updated", updated))
	return nil
}

// checkTokenReserve sleeps until the rate limit resets when the remaining
// core tokens fall under the configured reserve. A reserve of zero disables
// the guard.
func (l *Labeler) checkTokenReserve(ctx context.Context) {
	if l.Config.GitHubTokenReserve <= 0 {
		return
	}

	rateLimits, _, err := l.GithubClient.RateLimits(ctx)
	if err != nil {
		mlog.Warn("Could not get the rate limit", mlog.Err(err))
		return
	}

	remaining := rateLimits.GetCore().Remaining
	mlog.Debug("Current rate limit", mlog.Int("remaining", remaining), mlog.Int("limit", rateLimits.GetCore().Limit))
	if remaining > l.Config.GitHubTokenReserve {
		return
	}

	sleepDuration := time.Until(rateLimits.GetCore().Reset.Time) + 10*time.Second
	if sleepDuration > 0 {
		mlog.Warn("Tokens reached minimum reserve, sleeping until reset",
			mlog.Int("reserve", l.Config.GitHubTokenReserve),
			mlog.Any("sleep_time", sleepDuration))
		select {
		case <-ctx.Done():
		case <-time.After(sleepDuration):
		}
	}
}
