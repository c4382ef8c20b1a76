package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized matches StatusError values with a 401 code via errors.Is
var ErrUnauthorized = errors.New("unauthorized")

// StatusError reports a non-2xx HTTP response
type StatusError struct {
	Code int
	Text string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %d %s", e.Code, e.Text)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized && e.Code == http.StatusUnauthorized
}
