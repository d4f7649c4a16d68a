package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repogw/pkg/cli/config"
	"github.com/m-mizutani/repogw/pkg/domain/interfaces"
	"github.com/m-mizutani/repogw/pkg/domain/model"
	"github.com/m-mizutani/repogw/pkg/infra"
	"github.com/m-mizutani/repogw/pkg/usecase"
	"github.com/m-mizutani/repogw/pkg/utils/safe"

	"github.com/urfave/cli/v3"
)

// reposCommand gives the IDE tooling a one-shot entry point to the same use
// cases the HTTP server exposes.
func reposCommand() *cli.Command {
	return &cli.Command{
		Name:  "repos",
		Usage: "Repository operations against GitHub",
		Commands: []*cli.Command{
			reposListCommand(),
			reposCreateCommand(),
		},
	}
}

func reposListCommand() *cli.Command {
	var githubCfg config.GitHub

	return &cli.Command{
		Name:  "list",
		Usage: "List repositories of the authenticated user",
		Flags: githubCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := buildUseCase(githubCfg)
			if err != nil {
				return err
			}

			repos, err := uc.ListRepositories(ctx)
			if err != nil {
				return err
			}

			return printJSON(os.Stdout, repos)
		},
	}
}

func reposCreateCommand() *cli.Command {
	var (
		githubCfg config.GitHub
		input     string
	)
	createFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Usage:       "Path to a JSON creation request ('-' for stdin)",
			Aliases:     []string{"i"},
			Destination: &input,
			Value:       "-",
		},
	}

	return &cli.Command{
		Name:  "create",
		Usage: "Create a repository for the authenticated user",
		Flags: slice.Flatten(createFlags, githubCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			req, err := loadCreateRequest(input)
			if err != nil {
				return err
			}

			uc, err := buildUseCase(githubCfg)
			if err != nil {
				return err
			}

			created, err := uc.CreateRepository(ctx, req)
			if err != nil {
				return err
			}

			return printJSON(os.Stdout, created)
		},
	}
}

func buildUseCase(githubCfg config.GitHub) (interfaces.UseCase, error) {
	ghClient, err := githubCfg.New()
	if err != nil {
		return nil, err
	}

	return usecase.New(infra.New(infra.WithGitHubClient(ghClient))), nil
}

func loadCreateRequest(input string) (*model.RepositoryCreateRequest, error) {
	var r io.Reader = os.Stdin
	if input != "-" {
		fd, err := os.Open(input)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open request file", goerr.V("path", input))
		}
		defer safe.Close(fd)
		r = fd
	}

	var req model.RepositoryCreateRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, goerr.Wrap(err, "failed to decode creation request")
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return &req, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to print result")
	}

	return nil
}
