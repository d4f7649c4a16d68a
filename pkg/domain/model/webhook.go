package model

import "github.com/m-mizutani/goerr/v2"

// WebhookPayload is the payload accepted by POST /api/github/webhook. Only
// the three fields checked by Validate are looked at; the rest of the event
// is accepted and discarded.
type WebhookPayload struct {
	Action     string            `json:"action"`
	Repository WebhookRepository `json:"repository"`
}

type WebhookRepository struct {
	Name  string       `json:"name"`
	Owner WebhookOwner `json:"owner"`
}

type WebhookOwner struct {
	Login string `json:"login"`
}

// Validate checks that the three required fields are present.
func (x *WebhookPayload) Validate() error {
	if x.Action == "" {
		return goerr.New("action is required")
	}
	if x.Repository.Name == "" {
		return goerr.New("repository.name is required")
	}
	if x.Repository.Owner.Login == "" {
		return goerr.New("repository.owner.login is required")
	}

	return nil
}
