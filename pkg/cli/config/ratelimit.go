package config

import (
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"
)

type RateLimit struct {
	window time.Duration
	max    int64
}

func (x *RateLimit) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "rate-limit-window",
			Usage:       "Length of the rate limit window",
			Category:    "Rate limit",
			Destination: &x.window,
			Sources:     cli.EnvVars("REPOGW_RATE_LIMIT_WINDOW"),
			Value:       time.Minute,
		},
		&cli.Int64Flag{
			Name:        "rate-limit-max",
			Usage:       "Max requests per client address within the window",
			Category:    "Rate limit",
			Destination: &x.max,
			Sources:     cli.EnvVars("REPOGW_RATE_LIMIT_MAX"),
			Value:       60,
		},
	}
}

func (x RateLimit) Window() time.Duration {
	return x.window
}

func (x RateLimit) Max() int {
	return int(x.max)
}

func (x RateLimit) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("Window", x.window),
		slog.Int64("Max", x.max),
	)
}
