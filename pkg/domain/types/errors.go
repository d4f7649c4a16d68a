package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")
	ErrBadCredential = goerr.New("credential rejected by GitHub")
)
