package client

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a referenced room or reservation that does not exist on
// the service. It is kept distinct from transient failures so callers can
// show "not found" instead of a generic error.
var ErrNotFound = errors.New("resource not found")

// RejectedError is a submission the service declined: the body carried a
// detail message, preserved verbatim. A rejection is the authoritative
// conflict signal and overrides whatever the local pre-check concluded.
type RejectedError struct {
	StatusCode int
	Detail     string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("rejected by reservation service (%d): %s", e.StatusCode, e.Detail)
}
