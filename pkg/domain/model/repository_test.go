package model_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repogw/pkg/domain/model"
)

func TestToSummary(t *testing.T) {
	t.Run("copies all summary fields", func(t *testing.T) {
		updatedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		repo := &github.Repository{
			ID:              github.Int64(42),
			Name:            github.String("repo"),
			FullName:        github.String("someone/repo"),
			Description:     github.String("a description"),
			Private:         github.Bool(true),
			HTMLURL:         github.String("https://github.com/someone/repo"),
			DefaultBranch:   github.String("main"),
			UpdatedAt:       &github.Timestamp{Time: updatedAt},
			Visibility:      github.String("private"),
			Language:        github.String("Go"),
			StargazersCount: github.Int(7),
		}

		summary := model.ToSummary(repo)

		gt.V(t, summary.ID).Equal(42)
		gt.V(t, summary.Name).Equal("repo")
		gt.V(t, summary.FullName).Equal("someone/repo")
		gt.V(t, *summary.Description).Equal("a description")
		gt.V(t, summary.Private).Equal(true)
		gt.V(t, summary.HTMLURL).Equal("https://github.com/someone/repo")
		gt.V(t, summary.DefaultBranch).Equal("main")
		gt.V(t, summary.UpdatedAt.Equal(updatedAt)).Equal(true)
		gt.V(t, summary.Visibility).Equal("private")
		gt.V(t, *summary.Language).Equal("Go")
		gt.V(t, summary.StargazersCount).Equal(7)
	})

	t.Run("absent fields become null, not an error", func(t *testing.T) {
		summary := model.ToSummary(&github.Repository{
			ID:   github.Int64(1),
			Name: github.String("bare"),
		})

		gt.V(t, summary.Description == nil).Equal(true)
		gt.V(t, summary.Language == nil).Equal(true)
		gt.V(t, summary.UpdatedAt == nil).Equal(true)

		raw := gt.R1(json.Marshal(summary)).NoError(t)
		var fields map[string]any
		gt.NoError(t, json.Unmarshal(raw, &fields))
		gt.V(t, len(fields)).Equal(11)
		gt.V(t, fields["description"] == nil).Equal(true)
		gt.V(t, fields["language"] == nil).Equal(true)
	})

	t.Run("nil input yields zero value", func(t *testing.T) {
		summary := model.ToSummary(nil)
		gt.V(t, summary.ID).Equal(0)
		gt.V(t, summary.Name).Equal("")
	})
}

func TestToCreated(t *testing.T) {
	t.Run("copies all creation fields", func(t *testing.T) {
		createdAt := time.Date(2024, 6, 2, 9, 30, 0, 0, time.UTC)
		repo := &github.Repository{
			ID:            github.Int64(99),
			Name:          github.String("new-repo"),
			FullName:      github.String("someone/new-repo"),
			Description:   github.String("fresh"),
			Private:       github.Bool(false),
			HTMLURL:       github.String("https://github.com/someone/new-repo"),
			DefaultBranch: github.String("main"),
			CreatedAt:     &github.Timestamp{Time: createdAt},
			Visibility:    github.String("public"),
		}

		created := model.ToCreated(repo)

		gt.V(t, created.ID).Equal(99)
		gt.V(t, created.Name).Equal("new-repo")
		gt.V(t, created.FullName).Equal("someone/new-repo")
		gt.V(t, *created.Description).Equal("fresh")
		gt.V(t, created.Private).Equal(false)
		gt.V(t, created.HTMLURL).Equal("https://github.com/someone/new-repo")
		gt.V(t, created.DefaultBranch).Equal("main")
		gt.V(t, created.CreatedAt.Equal(createdAt)).Equal(true)
		gt.V(t, created.Visibility).Equal("public")
	})

	t.Run("nil input yields zero value", func(t *testing.T) {
		created := model.ToCreated(nil)
		gt.V(t, created.ID).Equal(0)
	})
}

func TestUpstreamError(t *testing.T) {
	t.Run("transport failure has no status code", func(t *testing.T) {
		err := &model.UpstreamError{Err: errors.New("connection refused")}
		gt.V(t, err.Transport()).Equal(true)
		gt.V(t, err.Error() == "").Equal(false)
	})

	t.Run("http failure carries status and message", func(t *testing.T) {
		err := &model.UpstreamError{StatusCode: 422, Message: "name already exists"}
		gt.V(t, err.Transport()).Equal(false)
		gt.V(t, err.StatusCode).Equal(422)
		gt.V(t, err.Message).Equal("name already exists")
	})
}
