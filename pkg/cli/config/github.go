package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/repogw/pkg/domain/types"
	"github.com/m-mizutani/repogw/pkg/infra/githubapi"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	token         types.GitHubToken `masq:"secret"`
	apiURL        string
	timeout       time.Duration
	webhookSecret types.WebhookSecret `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("REPOGW_GITHUB_TOKEN"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API base URL (for GitHub Enterprise)",
			Category:    "GitHub",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("REPOGW_GITHUB_API_URL"),
		},
		&cli.DurationFlag{
			Name:        "github-timeout",
			Usage:       "Timeout for outbound GitHub API calls",
			Category:    "GitHub",
			Destination: &x.timeout,
			Sources:     cli.EnvVars("REPOGW_GITHUB_TIMEOUT"),
			Value:       githubapi.DefaultTimeout,
		},
		&cli.StringFlag{
			Name:        "webhook-secret",
			Usage:       "GitHub webhook secret (accepted for forward compatibility, signature verification is not implemented)",
			Category:    "GitHub",
			Destination: (*string)(&x.webhookSecret),
			Sources:     cli.EnvVars("REPOGW_WEBHOOK_SECRET"),
		},
	}
}

func (x GitHub) New() (*githubapi.Client, error) {
	options := []githubapi.Option{
		githubapi.WithTimeout(x.timeout),
	}
	if x.apiURL != "" {
		options = append(options, githubapi.WithBaseURL(x.apiURL))
	}

	return githubapi.New(x.token, options...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("Token.len", len(x.token)),
		slog.String("APIURL", x.apiURL),
		slog.Duration("Timeout", x.timeout),
		slog.Int("WebhookSecret.len", len(x.webhookSecret)),
	)
}

func (x GitHub) WebhookSecret() types.WebhookSecret {
	return x.webhookSecret
}
