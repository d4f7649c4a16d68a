package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

const (
	maxRepoNameLength    = 100
	maxDescriptionLength = 1000
)

// Validate reports the first violated constraint. The error message is plain
// text intended for the client response body.
func (x *RepositoryCreateRequest) Validate() error {
	name := strings.TrimSpace(x.Name)
	if name == "" {
		return goerr.New("name is required and must not be empty")
	}
	if len(name) > maxRepoNameLength {
		return goerr.New("name must be 100 characters or less")
	}
	if len(x.Description) > maxDescriptionLength {
		return goerr.New("description must be 1000 characters or less")
	}

	return nil
}

// Normalize returns a copy with the name trimmed and absent boolean fields
// filled with their defaults (private: false, auto_init: true). Normalizing
// an already-normalized request changes nothing.
func (x RepositoryCreateRequest) Normalize() RepositoryCreateRequest {
	x.Name = strings.TrimSpace(x.Name)
	if x.Private == nil {
		v := false
		x.Private = &v
	}
	if x.AutoInit == nil {
		v := true
		x.AutoInit = &v
	}

	return x
}
