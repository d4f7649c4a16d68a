package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubClient

import (
	"context"

	"github.com/google/go-github/v53/github"

	"github.com/m-mizutani/repogw/pkg/domain/model"
)

// GitHubClient is the outbound edge to the GitHub REST API. Implementations
// report failures as *model.UpstreamError.
type GitHubClient interface {
	ListRepositories(ctx context.Context) ([]*github.Repository, error)
	CreateRepository(ctx context.Context, req *model.RepositoryCreateRequest) (*github.Repository, error)
	CurrentUser(ctx context.Context) (*github.User, error)
}
