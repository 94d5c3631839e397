package calendar

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// ErrorKind classifies gateway failures for the caller's retry policy.
type ErrorKind int

const (
	// KindUnavailable is a transient transport failure; safe to retry with
	// backoff at the caller's discretion.
	KindUnavailable ErrorKind = iota
	// KindAuth is a credential failure; fatal, not retried.
	KindAuth
	// KindConflict is a duplicate/validation rejection from the calendar,
	// surfaced when a concurrent writer won a booking race.
	KindConflict
)

// GatewayError wraps a failure from the external calendar.
type GatewayError struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("calendar %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// wrapErr classifies an API error by HTTP status code.
func wrapErr(op string, err error) *GatewayError {
	kind := KindUnavailable
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			kind = KindAuth
		case http.StatusBadRequest, http.StatusConflict, http.StatusPreconditionFailed:
			kind = KindConflict
		}
	}
	return &GatewayError{Op: op, Kind: kind, Err: err}
}

// IsConflict reports whether err is a gateway conflict rejection.
func IsConflict(err error) bool {
	var ge *GatewayError
	return errors.As(err, &ge) && ge.Kind == KindConflict
}

// IsAuthFailure reports whether err is a credential failure.
func IsAuthFailure(err error) bool {
	var ge *GatewayError
	return errors.As(err, &ge) && ge.Kind == KindAuth
}
