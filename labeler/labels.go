package labeler

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/go-github/v39/github"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
)

var issueNumberPattern = regexp.MustCompile(`/issues/(\d+)$`)

// issueNumberFromCard extracts the issue number from the card's content URL.
// Cards reaching this point were filtered by the paginator, so a missing
// content URL is a defect in the caller, not in the remote data.
func issueNumberFromCard(card *github.ProjectCard) (int, error) {
	contentURL := card.GetContentURL()
	if contentURL == "" {
		return 0, errors.Errorf("card %d has no issue attached", card.GetID())
	}

	match := issueNumberPattern.FindStringSubmatch(contentURL)
	if match == nil {
		return 0, errors.Errorf("no issue number in content url %q for card %d", contentURL, card.GetID())
	}

	number, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, errors.Wrapf(err, "bad issue number in content url %q for card %d", contentURL, card.GetID())
	}
	return number, nil
}

// mutateCardLabels performs the run's configured label mutation on the issue
// behind the card.
func (l *Labeler) mutateCardLabels(ctx context.Context, card *github.ProjectCard, labels []string) error {
	number, err := issueNumberFromCard(card)
	if err != nil {
		return err
	}

	if l.Config.Action == ActionRemove {
		return l.removeLabelsFromIssue(ctx, number, labels)
	}
	return l.addLabelsToIssue(ctx, number, labels)
}

func (l *Labeler) addLabelsToIssue(ctx context.Context, number int, labels []string) error {
	if l.Config.SkipLabeled {
		existing, err := l.getIssueLabels(ctx, number)
		if err != nil {
			return err
		}
		if hasAllLabels(existing, labels) {
			mlog.Debug("Issue already has every requested label", mlog.Int("issue", number))
			return nil
		}
	}

	if _, _, err := l.GithubClient.Issues.AddLabelsToIssue(ctx, l.Config.Org, l.Config.Repo, number, labels); err != nil {
		return errors.Wrapf(err, "could not add labels to issue %d", number)
	}
	return nil
}

func (l *Labeler) removeLabelsFromIssue(ctx context.Context, number int, labels []string) error {
	for _, label := range labels {
		if _, err := l.GithubClient.Issues.RemoveLabelForIssue(ctx, l.Config.Org, l.Config.Repo, number, label); err != nil {
			return errors.Wrapf(err, "could not remove label %q from issue %d", label, number)
		}
	}
	return nil
}

func (l *Labeler) getIssueLabels(ctx context.Context, number int) ([]string, error) {
	opts := &github.ListOptions{PerPage: listPerPage}
	var names []string
	for {
		labels, resp, err := l.GithubClient.Issues.ListLabelsByIssue(ctx, l.Config.Org, l.Config.Repo, number, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "could not list labels for issue %d", number)
		}
		for _, label := range labels {
			names = append(names, label.GetName())
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return names, nil
}

// hasAllLabels compares case-insensitively; the platform keeps label names in
// whatever case they were created with.
func hasAllLabels(existing, wanted []string) bool {
	for _, want := range wanted {
		found := false
		for _, have := range existing {
			if strings.EqualFold(have, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
