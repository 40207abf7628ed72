// Package clients fetches profiles and the task catalog from the
// upstream services, with a Redis cache and local file sources.
package clients

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is returned when the upstream service has no such record.
var ErrNotFound = errors.New("not found")

// StatusError is a non-2xx answer from an upstream service.
type StatusError struct {
	Service string
	Code    int
	Body    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Service, e.Code, e.Body)
}

// Is lets errors.Is(err, ErrNotFound) match a 404.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}
