package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/repogw/pkg/domain/model"
	"github.com/m-mizutani/repogw/pkg/utils/logging"
)

// ListRepositories fetches the user's repositories from GitHub and projects
// them down to the summary view.
func (x *UseCase) ListRepositories(ctx context.Context) ([]model.RepositorySummary, error) {
	repos, err := x.clients.GitHubClient().ListRepositories(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.RepositorySummary, 0, len(repos))
	for _, repo := range repos {
		summaries = append(summaries, model.ToSummary(repo))
	}

	return summaries, nil
}

// CreateRepository normalizes the already-validated request, creates the
// repository upstream, and projects the response.
func (x *UseCase) CreateRepository(ctx context.Context, req *model.RepositoryCreateRequest) (*model.RepositoryCreated, error) {
	normalized := req.Normalize()

	repo, err := x.clients.GitHubClient().CreateRepository(ctx, &normalized)
	if err != nil {
		return nil, err
	}

	created := model.ToCreated(repo)

	logging.From(ctx).Info("repository created",
		slog.String("full_name", created.FullName),
		slog.Bool("private", created.Private),
	)

	return &created, nil
}
