package githubapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"

	"github.com/m-mizutani/repogw/pkg/domain/interfaces"
	"github.com/m-mizutani/repogw/pkg/domain/model"
	"github.com/m-mizutani/repogw/pkg/domain/types"
	"github.com/m-mizutani/repogw/pkg/utils/logging"
)

// DefaultTimeout bounds each outbound call. The upstream API imposes no
// deadline of its own, so a slow upstream would otherwise hold the inbound
// request open indefinitely.
const DefaultTimeout = 10 * time.Second

const listPageSize = 100

// Client talks to the GitHub REST API with a static bearer token. Each
// operation performs exactly one attempt, no retry and no pagination beyond
// the first page.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	gh         *github.Client
}

var _ interfaces.GitHubClient = (*Client)(nil)

type Option func(*Client)

// WithBaseURL points the client at a different API endpoint, mainly for
// tests against a local fake upstream.
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(x *Client) {
		x.timeout = timeout
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(x *Client) {
		x.httpClient = httpClient
	}
}

func New(token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "github token is empty")
	}

	client := &Client{
		timeout: DefaultTimeout,
	}
	for _, opt := range options {
		opt(client)
	}

	if client.httpClient == nil {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
		client.httpClient = oauth2.NewClient(context.Background(), ts)
		client.httpClient.Timeout = client.timeout
	}

	gh := github.NewClient(client.httpClient)
	if client.baseURL != "" {
		u, err := url.Parse(client.baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid github api base URL", goerr.V("url", client.baseURL))
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		gh.BaseURL = u
	}
	client.gh = gh

	return client, nil
}

// ListRepositories fetches the first page of the authenticated user's
// repositories, most recently updated first, all visibilities.
func (x *Client) ListRepositories(ctx context.Context) ([]*github.Repository, error) {
	opts := &github.RepositoryListOptions{
		Visibility: "all",
		Sort:       "updated",
		ListOptions: github.ListOptions{
			PerPage: listPageSize,
		},
	}

	repos, _, err := x.gh.Repositories.List(ctx, "", opts)
	if err != nil {
		return nil, classify(err)
	}

	logging.From(ctx).Debug("listed repositories", slog.Int("count", len(repos)))

	return repos, nil
}

// CreateRepository submits the normalized request as the creation payload.
func (x *Client) CreateRepository(ctx context.Context, req *model.RepositoryCreateRequest) (*github.Repository, error) {
	payload := &github.Repository{
		Name:     github.String(req.Name),
		Private:  req.Private,
		AutoInit: req.AutoInit,
	}
	if req.Description != "" {
		payload.Description = github.String(req.Description)
	}

	created, _, err := x.gh.Repositories.Create(ctx, "", payload)
	if err != nil {
		return nil, classify(err)
	}

	logging.From(ctx).Info("created repository",
		slog.String("name", created.GetName()),
		slog.String("full_name", created.GetFullName()),
	)

	return created, nil
}

// CurrentUser resolves the identity behind the configured token.
func (x *Client) CurrentUser(ctx context.Context) (*github.User, error) {
	user, _, err := x.gh.Users.Get(ctx, "")
	if err != nil {
		return nil, classify(err)
	}

	return user, nil
}

// classify converts a go-github error into *model.UpstreamError, separating
// "upstream answered with an error status" from "no response at all".
func classify(err error) error {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return &model.UpstreamError{
			StatusCode: errResp.Response.StatusCode,
			Message:    errResp.Message,
			Err:        err,
		}
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return &model.UpstreamError{
			StatusCode: rateErr.Response.StatusCode,
			Message:    rateErr.Message,
			Err:        err,
		}
	}

	// Secondary rate limits come back as their own error type, still with a
	// real HTTP response attached.
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.Response != nil {
		return &model.UpstreamError{
			StatusCode: abuseErr.Response.StatusCode,
			Message:    abuseErr.Message,
			Err:        err,
		}
	}

	return &model.UpstreamError{Err: err}
}
