package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repogw/pkg/cli/config"
	"github.com/m-mizutani/repogw/pkg/controller/server"
	"github.com/m-mizutani/repogw/pkg/domain/model"
	"github.com/m-mizutani/repogw/pkg/domain/types"
	"github.com/m-mizutani/repogw/pkg/infra"
	"github.com/m-mizutani/repogw/pkg/usecase"
	"github.com/m-mizutani/repogw/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr string

		githubCfg config.GitHub
		rateCfg   config.RateLimit
		sentryCfg config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("REPOGW_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			githubCfg.Flags(),
			rateCfg.Flags(),
			sentryCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHub", githubCfg),
				slog.Any("RateLimit", rateCfg),
				slog.Any("Sentry", sentryCfg),
			)

			if err := sentryCfg.Configure(ctx); err != nil {
				return err
			}

			ghClient, err := githubCfg.New()
			if err != nil {
				return err
			}

			clients := infra.New(infra.WithGitHubClient(ghClient))
			uc := usecase.New(clients)

			// One who-am-I call before the listener opens. A rejected token is
			// fatal; a flaky network is not.
			if err := uc.VerifyCredential(ctx); err != nil {
				var upErr *model.UpstreamError
				if errors.As(err, &upErr) && !upErr.Transport() &&
					(upErr.StatusCode == http.StatusUnauthorized || upErr.StatusCode == http.StatusForbidden) {
					return goerr.Wrap(types.ErrBadCredential, "github rejected the configured token",
						goerr.V("status", upErr.StatusCode))
				}
				logging.Default().Warn("credential check did not complete, starting anyway",
					slog.Any("error", err))
			}

			s := server.New(uc,
				server.WithWebhookSecret(githubCfg.WebhookSecret()),
				server.WithRateLimit(rateCfg.Window(), rateCfg.Max()),
			)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
