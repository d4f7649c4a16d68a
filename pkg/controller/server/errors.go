package server

import (
	"errors"
	"net/http"

	"github.com/m-mizutani/repogw/pkg/domain/model"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// upstreamOp selects the operation-specific rows of the translation table:
// 403 is a meaningful upstream answer only for list, 422 only for create, and
// the transport-failure message names the operation that failed.
type upstreamOp int

const (
	opListRepos upstreamOp = iota
	opCreateRepo
)

// translateUpstream maps a failed upstream call onto the client-facing status
// and body. The client never sees raw internal error text; only messages that
// GitHub itself returned, or fixed ones.
func translateUpstream(op upstreamOp, err error) (int, errorBody) {
	var upErr *model.UpstreamError
	if !errors.As(err, &upErr) {
		return http.StatusInternalServerError, errorBody{Error: "Internal server error"}
	}

	if upErr.Transport() {
		msg := "Failed to fetch repositories"
		if op == opCreateRepo {
			msg = "Failed to create repository"
		}
		return http.StatusInternalServerError, errorBody{
			Error:   "Internal server error",
			Message: msg,
		}
	}

	switch {
	case upErr.StatusCode == http.StatusUnauthorized:
		return http.StatusUnauthorized, errorBody{
			Error:   "Authentication failed",
			Message: "Invalid or expired GitHub token",
		}

	case upErr.StatusCode == http.StatusForbidden && op == opListRepos:
		return http.StatusForbidden, errorBody{
			Error:   "Permission denied",
			Message: "Token does not have required permissions",
		}

	case upErr.StatusCode == http.StatusUnprocessableEntity && op == opCreateRepo:
		return http.StatusUnprocessableEntity, errorBody{
			Error:   "Validation failed",
			Message: upErr.Message,
		}

	default:
		return upErr.StatusCode, errorBody{
			Error:   "GitHub API error",
			Message: upErr.Message,
		}
	}
}
