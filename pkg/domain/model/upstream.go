package model

import "fmt"

// UpstreamError classifies a failed GitHub API call. StatusCode is 0 when no
// HTTP response was received at all (transport failure); otherwise it carries
// the upstream status code and the upstream-supplied message.
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

func (x *UpstreamError) Error() string {
	if x.Transport() {
		return fmt.Sprintf("github api unreachable: %v", x.Err)
	}
	return fmt.Sprintf("github api returned %d: %s", x.StatusCode, x.Message)
}

func (x *UpstreamError) Unwrap() error {
	return x.Err
}

// Transport reports whether the call failed without any HTTP response.
func (x *UpstreamError) Transport() bool {
	return x.StatusCode == 0
}
