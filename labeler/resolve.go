package labeler

import (
	"context"

	"github.com/google/go-github/v39/github"
	"github.com/pkg/errors"

	"github.com/mattermost/mattermost-column-labeler/model"
)

const listPerPage = 100

// resolveColumnID turns a directive into a concrete column id. Directives
// that already carry a column id pass through without touching the API.
func (l *Labeler) resolveColumnID(ctx context.Context, directive *model.Directive) (int64, error) {
	if directive.ByColumnID() {
		return directive.ColumnID, nil
	}

	project, err := l.findProject(ctx, directive.ProjectName)
	if err != nil {
		return 0, err
	}

	column, err := l.findColumn(ctx, project.GetID(), directive.ColumnName)
	if err != nil {
		return 0, err
	}
	if column.GetID() == 0 {
		return 0, errors.Errorf("column %q has no id", directive.ColumnName)
	}

	return column.GetID(), nil
}

func (l *Labeler) findProject(ctx context.Context, name string) (*github.Project, error) {
	opts := &github.ProjectListOptions{
		ListOptions: github.ListOptions{PerPage: listPerPage},
	}
	for {
		projects, resp, err := l.GithubClient.Repositories.ListProjects(ctx, l.Config.Org, l.Config.Repo, opts)
		if err != nil {
			return nil, errors.Wrap(err, "could not list repository projects")
		}
		for _, project := range projects {
			if project.GetName() == name {
				return project, nil
			}
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return nil, errors.Errorf("project %q not found", name)
}

func (l *Labeler) findColumn(ctx context.Context, projectID int64, name string) (*github.ProjectColumn, error) {
	opts := &github.ListOptions{PerPage: listPerPage}
	for {
		columns, resp, err := l.GithubClient.Projects.ListProjectColumns(ctx, projectID, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "could not list columns for project %d", projectID)
		}
		for _, column := range columns {
			if column.GetName() == name {
				return column, nil
			}
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return nil, errors.Errorf("column %q not found", name)
}
