package githubapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repogw/pkg/domain/model"
	"github.com/m-mizutani/repogw/pkg/domain/types"
	"github.com/m-mizutani/repogw/pkg/infra/githubapi"
	"github.com/m-mizutani/repogw/pkg/utils/testutil"
)

func newClient(t *testing.T, baseURL string) *githubapi.Client {
	t.Helper()
	return gt.R1(githubapi.New("test-token", githubapi.WithBaseURL(baseURL))).NoError(t)
}

func TestNew(t *testing.T) {
	t.Run("empty token is rejected", func(t *testing.T) {
		_, err := githubapi.New("")
		gt.Error(t, err)
	})

	t.Run("invalid base URL is rejected", func(t *testing.T) {
		_, err := githubapi.New("token", githubapi.WithBaseURL("://bad"))
		gt.Error(t, err)
	})
}

func TestListRepositories(t *testing.T) {
	t.Run("sends fixed paging and sorting parameters with the bearer token", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/user/repos")
			gt.V(t, r.Header.Get("Authorization")).Equal("Bearer test-token")

			q := r.URL.Query()
			gt.V(t, q.Get("per_page")).Equal("100")
			gt.V(t, q.Get("sort")).Equal("updated")
			gt.V(t, q.Get("visibility")).Equal("all")
			gt.V(t, q.Get("page")).Equal("")

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":1,"name":"one"},{"id":2,"name":"two"}]`))
		}))
		defer ts.Close()

		client := newClient(t, ts.URL)

		repos := gt.R1(client.ListRepositories(context.Background())).NoError(t)
		gt.V(t, len(repos)).Equal(2)
		gt.V(t, repos[0].GetID()).Equal(1)
		gt.V(t, repos[1].GetName()).Equal("two")
	})

	t.Run("401 is classified with status and upstream message", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
		}))
		defer ts.Close()

		client := newClient(t, ts.URL)

		_, err := client.ListRepositories(context.Background())
		gt.Error(t, err)

		var upErr *model.UpstreamError
		gt.V(t, errors.As(err, &upErr)).Equal(true)
		gt.V(t, upErr.StatusCode).Equal(http.StatusUnauthorized)
		gt.V(t, upErr.Message).Equal("Bad credentials")
		gt.V(t, upErr.Transport()).Equal(false)
	})

	t.Run("secondary rate limit keeps its 403 status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"You have exceeded a secondary rate limit. Please wait a few minutes before you try again.","documentation_url":"https://docs.github.com/rest/overview/resources-in-the-rest-api#secondary-rate-limits"}`))
		}))
		defer ts.Close()

		client := newClient(t, ts.URL)

		_, err := client.ListRepositories(context.Background())
		gt.Error(t, err)

		var upErr *model.UpstreamError
		gt.V(t, errors.As(err, &upErr)).Equal(true)
		gt.V(t, upErr.Transport()).Equal(false)
		gt.V(t, upErr.StatusCode).Equal(http.StatusForbidden)
	})

	t.Run("unreachable upstream is classified as transport failure", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		baseURL := ts.URL
		ts.Close()

		client := newClient(t, baseURL)

		_, err := client.ListRepositories(context.Background())
		gt.Error(t, err)

		var upErr *model.UpstreamError
		gt.V(t, errors.As(err, &upErr)).Equal(true)
		gt.V(t, upErr.Transport()).Equal(true)
		gt.V(t, upErr.StatusCode).Equal(0)
	})
}

func TestCreateRepository(t *testing.T) {
	boolPtr := func(v bool) *bool { return &v }

	t.Run("submits the normalized request verbatim", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.Method).Equal(http.MethodPost)
			gt.V(t, r.URL.Path).Equal("/user/repos")

			var payload map[string]any
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			gt.V(t, payload["name"]).Equal("my-repo")
			gt.V(t, payload["description"]).Equal("a description")
			gt.V(t, payload["private"]).Equal(true)
			gt.V(t, payload["auto_init"]).Equal(true)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":10,"name":"my-repo","full_name":"me/my-repo"}`))
		}))
		defer ts.Close()

		client := newClient(t, ts.URL)

		created := gt.R1(client.CreateRepository(context.Background(), &model.RepositoryCreateRequest{
			Name:        "my-repo",
			Description: "a description",
			Private:     boolPtr(true),
			AutoInit:    boolPtr(true),
		})).NoError(t)

		gt.V(t, created.GetID()).Equal(10)
		gt.V(t, created.GetFullName()).Equal("me/my-repo")
	})

	t.Run("422 carries the upstream validation message", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"name already exists"}`))
		}))
		defer ts.Close()

		client := newClient(t, ts.URL)

		_, err := client.CreateRepository(context.Background(), &model.RepositoryCreateRequest{
			Name:     "dupe",
			Private:  boolPtr(false),
			AutoInit: boolPtr(true),
		})
		gt.Error(t, err)

		var upErr *model.UpstreamError
		gt.V(t, errors.As(err, &upErr)).Equal(true)
		gt.V(t, upErr.StatusCode).Equal(http.StatusUnprocessableEntity)
		gt.V(t, upErr.Message).Equal("name already exists")
	})
}

func TestCurrentUser(t *testing.T) {
	t.Run("resolves the token owner", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/user")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"login":"someone","id":123}`))
		}))
		defer ts.Close()

		client := newClient(t, ts.URL)

		user := gt.R1(client.CurrentUser(context.Background())).NoError(t)
		gt.V(t, user.GetLogin()).Equal("someone")
	})

	t.Run("403 is classified with its status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"Forbidden"}`))
		}))
		defer ts.Close()

		client := newClient(t, ts.URL)

		_, err := client.CurrentUser(context.Background())
		gt.Error(t, err)

		var upErr *model.UpstreamError
		gt.V(t, errors.As(err, &upErr)).Equal(true)
		gt.V(t, upErr.StatusCode).Equal(http.StatusForbidden)
	})
}

func TestClientWithGitHubAPI(t *testing.T) {
	token := testutil.GetEnvOrSkip(t, "TEST_REPOGW_GITHUB_TOKEN")

	client := gt.R1(githubapi.New(types.GitHubToken(token))).NoError(t)
	ctx := context.Background()

	user := gt.R1(client.CurrentUser(ctx)).NoError(t)
	gt.True(t, user.GetLogin() != "")

	repos := gt.R1(client.ListRepositories(ctx)).NoError(t)
	for _, repo := range repos {
		gt.True(t, repo.GetName() != "")
	}
}
