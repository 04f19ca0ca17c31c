package labeler

import (
	"context"

	"github.com/google/go-github/v39/github"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
)

const (
	cardsPerPage             = 100
	archivedStateNotArchived = "not_archived"
)

// getCardsInColumn returns every non-archived card in the column that is
// backed by an issue, in page order. Cards without a content URL are notes
// and are dropped. The loop stops at the first short page; a full page still
// gets one more request to confirm the list is exhausted.
func (l *Labeler) getCardsInColumn(ctx context.Context, columnID int64) ([]*github.ProjectCard, error) {
	if columnID <= 0 {
		return nil, errors.Errorf("invalid column id %d", columnID)
	}

	opts := &github.ProjectCardListOptions{
		ArchivedState: github.String(archivedStateNotArchived),
		ListOptions:   github.ListOptions{PerPage: cardsPerPage, Page: 1},
	}

	var cards []*github.ProjectCard
	for {
		page, resp, err := l.GithubClient.Projects.ListProjectCards(ctx, columnID, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "could not list cards for column %d", columnID)
		}
		for _, card := range page {
			if card.GetContentURL() == "" {
				mlog.Debug("Skipping note card", mlog.Int64("card", card.GetID()), mlog.Int64("column", columnID))
				continue
			}
			cards = append(cards, card)
		}
		if len(page) < cardsPerPage || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return cards, nil
}
