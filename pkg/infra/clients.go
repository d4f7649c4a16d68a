package infra

import (
	"github.com/m-mizutani/repogw/pkg/domain/interfaces"
)

type Clients struct {
	githubClient interfaces.GitHubClient
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubClient() interfaces.GitHubClient {
	return x.githubClient
}

func WithGitHubClient(client interfaces.GitHubClient) Option {
	return func(x *Clients) {
		x.githubClient = client
	}
}
