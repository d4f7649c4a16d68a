package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/m-mizutani/repogw/pkg/domain/interfaces"
	"github.com/m-mizutani/repogw/pkg/domain/types"
	"github.com/m-mizutani/repogw/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

type config struct {
	// webhookSecret is accepted so that deployments can already configure it,
	// but signature verification is not implemented. See the webhook handler.
	webhookSecret types.WebhookSecret

	rateWindow time.Duration
	rateMax    int
}

type Option func(*config)

func WithWebhookSecret(secret types.WebhookSecret) Option {
	return func(cfg *config) {
		cfg.webhookSecret = secret
	}
}

// WithRateLimit allows up to max requests per client address within window.
func WithRateLimit(window time.Duration, max int) Option {
	return func(cfg *config) {
		cfg.rateWindow = window
		cfg.rateMax = max
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		rateWindow: time.Minute,
		rateMax:    60,
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Use(recoverPanic)
	r.Use(securityHeaders)
	r.Use(corsPolicy)
	r.Use(rateLimit(newLimiterPool(cfg.rateWindow, cfg.rateMax)))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(r.Context(), w, http.StatusOK, statusBody{Status: "ok"})
	})

	r.Route("/api/github", func(r chi.Router) {
		r.Get("/repos", handleListRepos(uc))
		r.Post("/repos", handleCreateRepo(uc))
		r.Post("/webhook", handleWebhook())
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

type statusBody struct {
	Status string `json:"status"`
}

type messageBody struct {
	Message string `json:"message"`
}

func respondJSON(ctx context.Context, w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.From(ctx).Error("fail to write response", slog.Any("error", err))
	}
}
