package server

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/repogw/pkg/domain/interfaces"
	"github.com/m-mizutani/repogw/pkg/domain/model"
	"github.com/m-mizutani/repogw/pkg/utils/errutil"
)

func handleListRepos(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repos, err := uc.ListRepositories(r.Context())
		if err != nil {
			errutil.HandleError(r.Context(), "fail to list repositories", err)
			code, body := translateUpstream(opListRepos, err)
			respondJSON(r.Context(), w, code, body)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, repos)
	}
}

func handleCreateRepo(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req model.RepositoryCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondJSON(r.Context(), w, http.StatusBadRequest, errorBody{Error: "invalid JSON body"})
			return
		}

		if err := req.Validate(); err != nil {
			respondJSON(r.Context(), w, http.StatusBadRequest, errorBody{Error: err.Error()})
			return
		}

		created, err := uc.CreateRepository(r.Context(), &req)
		if err != nil {
			errutil.HandleError(r.Context(), "fail to create repository", err)
			code, body := translateUpstream(opCreateRepo, err)
			respondJSON(r.Context(), w, code, body)
			return
		}

		respondJSON(r.Context(), w, http.StatusCreated, created)
	}
}

// handleWebhook validates the payload shape and acknowledges it. Event
// processing and signature verification are not implemented; the configured
// webhook secret is currently unused.
func handleWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload model.WebhookPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			respondJSON(r.Context(), w, http.StatusBadRequest, errorBody{Error: "invalid JSON body"})
			return
		}

		if err := payload.Validate(); err != nil {
			respondJSON(r.Context(), w, http.StatusBadRequest, errorBody{Error: err.Error()})
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, messageBody{Message: "Webhook received"})
	}
}
