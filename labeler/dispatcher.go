package labeler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/go-github/v39/github"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"golang.org/x/time/rate"
)

const (
	// Batches below this size go out unthrottled; anything larger is spaced
	// out to stay under the remote abuse limits.
	throttleThreshold = 100
	throttleInterval  = time.Second
)

// dispatchBatch issues one label mutation per card, in input order, spaced by
// the batch's limiter. Mutations run concurrently once released; a failure is
// logged and counted but never aborts the batch. Returns the number of
// successful mutations after every dispatched attempt has settled.
func (l *Labeler) dispatchBatch(ctx context.Context, cards []*github.ProjectCard, labels []string) int {
	if len(cards) == 0 {
		return 0
	}

	limiter := l.limiter
	if limiter == nil {
		limiter = batchLimiter(len(cards))
	}

	var wg sync.WaitGroup
	var succeeded int64

	for _, card := range cards {
		if err := limiter.Wait(ctx); err != nil {
			mlog.Warn("Batch dispatch interrupted", mlog.Err(err))
			break
		}

		wg.Add(1)
		go func(card *github.ProjectCard) {
			defer wg.Done()
			if err := l.mutateCardLabels(ctx, card, labels); err != nil {
				mlog.Error("Could not update labels for card", mlog.Int64("card", card.GetID()), mlog.Err(err))
				l.Metrics.IncreaseLabelMutationErrors(l.Config.Action)
				return
			}
			atomic.AddInt64(&succeeded, 1)
			l.Metrics.IncreaseLabelMutations(l.Config.Action)
		}(card)
	}

	wg.Wait()
	return int(atomic.LoadInt64(&succeeded))
}

func batchLimiter(size int) *rate.Limiter {
	if size < throttleThreshold {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Every(throttleInterval), 1)
}
