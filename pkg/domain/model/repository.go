package model

import (
	"time"

	"github.com/google/go-github/v53/github"
)

// RepositoryCreateRequest is the payload accepted by POST /api/github/repos.
// Private and AutoInit are pointers so that an absent field can be told apart
// from an explicit false; Normalize fills absent fields with their defaults.
type RepositoryCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Private     *bool  `json:"private,omitempty"`
	AutoInit    *bool  `json:"auto_init,omitempty"`
}

// RepositorySummary is the list-view projection of an upstream repository.
// Nullable upstream fields stay pointers so that null passes through as-is.
type RepositorySummary struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	FullName        string     `json:"full_name"`
	Description     *string    `json:"description"`
	Private         bool       `json:"private"`
	HTMLURL         string     `json:"html_url"`
	DefaultBranch   string     `json:"default_branch"`
	UpdatedAt       *time.Time `json:"updated_at"`
	Visibility      string     `json:"visibility"`
	Language        *string    `json:"language"`
	StargazersCount int        `json:"stargazers_count"`
}

// RepositoryCreated is the projection returned after creating a repository.
type RepositoryCreated struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	FullName      string     `json:"full_name"`
	Description   *string    `json:"description"`
	Private       bool       `json:"private"`
	HTMLURL       string     `json:"html_url"`
	DefaultBranch string     `json:"default_branch"`
	CreatedAt     *time.Time `json:"created_at"`
	Visibility    string     `json:"visibility"`
}

// ToSummary copies the summary fields out of an upstream repository. Fields
// absent on the input become null in the output; a nil input yields the zero
// value.
func ToSummary(repo *github.Repository) RepositorySummary {
	if repo == nil {
		return RepositorySummary{}
	}

	return RepositorySummary{
		ID:              repo.GetID(),
		Name:            repo.GetName(),
		FullName:        repo.GetFullName(),
		Description:     repo.Description,
		Private:         repo.GetPrivate(),
		HTMLURL:         repo.GetHTMLURL(),
		DefaultBranch:   repo.GetDefaultBranch(),
		UpdatedAt:       timestampPtr(repo.UpdatedAt),
		Visibility:      repo.GetVisibility(),
		Language:        repo.Language,
		StargazersCount: repo.GetStargazersCount(),
	}
}

// ToCreated copies the creation-response fields out of an upstream repository.
func ToCreated(repo *github.Repository) RepositoryCreated {
	if repo == nil {
		return RepositoryCreated{}
	}

	return RepositoryCreated{
		ID:            repo.GetID(),
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		Description:   repo.Description,
		Private:       repo.GetPrivate(),
		HTMLURL:       repo.GetHTMLURL(),
		DefaultBranch: repo.GetDefaultBranch(),
		CreatedAt:     timestampPtr(repo.CreatedAt),
		Visibility:    repo.GetVisibility(),
	}
}

func timestampPtr(ts *github.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.Time
	return &t
}
