package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/repogw/pkg/utils/logging"
)

// VerifyCredential makes a single who-am-I call to confirm that the
// configured token is accepted by GitHub. The caller decides whether a
// failure is fatal.
func (x *UseCase) VerifyCredential(ctx context.Context) error {
	user, err := x.clients.GitHubClient().CurrentUser(ctx)
	if err != nil {
		return err
	}

	logging.From(ctx).Info("github credential verified", slog.String("login", user.GetLogin()))

	return nil
}
