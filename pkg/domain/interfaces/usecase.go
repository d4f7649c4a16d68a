package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/repogw/pkg/domain/model"
)

type UseCase interface {
	ListRepositories(ctx context.Context) ([]model.RepositorySummary, error)
	CreateRepository(ctx context.Context, req *model.RepositoryCreateRequest) (*model.RepositoryCreated, error)
	VerifyCredential(ctx context.Context) error
}
