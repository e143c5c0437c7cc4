package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrProviderTimeout   = errors.New("provider timeout")
	ErrRateLimited       = errors.New("provider rate limit exceeded")
	ErrResourceNotFound  = errors.New("resource not found")
	ErrAccountNotFound   = errors.New("account not found")
	ErrDuplicateJob      = errors.New("capture job already running for resource")
	ErrAlreadyGranted    = errors.New("access already granted")
	ErrInvalidAmount     = errors.New("credit amount must be positive")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnknownOperation  = errors.New("unknown operation")
	ErrInvalidArgument   = errors.New("invalid argument")
)

type ProviderHTTPError struct {
	Status int
	Body   string
}

func (e *ProviderHTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("provider http status %d", e.Status)
	}
	return fmt.Sprintf("provider http status %d: %s", e.Status, e.Body)
}

// ProviderFailure is one failed attempt inside a fallback resolution.
type ProviderFailure struct {
	Provider string `json:"provider"`
	Err      error  `json:"-"`
	Message  string `json:"error"`
}

type AllProvidersFailedError struct {
	Operation Operation
	Failures  []ProviderFailure
}

func (e *AllProvidersFailedError) Error() string {
	if len(e.Failures) == 0 {
		return fmt.Sprintf("no active provider for %s", e.Operation)
	}
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, f.Provider+": "+f.Message)
	}
	return fmt.Sprintf("all providers failed for %s (%s)", e.Operation, strings.Join(parts, "; "))
}

// AllTimedOut reports whether every attempt ended in a timeout.
func (e *AllProvidersFailedError) AllTimedOut() bool {
	return e.every(func(err error) bool { return errors.Is(err, ErrProviderTimeout) })
}

// AllNotFound reports whether every provider answered 404.
func (e *AllProvidersFailedError) AllNotFound() bool {
	return e.every(func(err error) bool {
		var httpErr *ProviderHTTPError
		return errors.As(err, &httpErr) && httpErr.Status == 404
	})
}

func (e *AllProvidersFailedError) every(fn func(error) bool) bool {
	if len(e.Failures) == 0 {
		return false
	}
	for _, f := range e.Failures {
		if !fn(f.Err) {
			return false
		}
	}
	return true
}

type InsufficientCreditsError struct {
	Required  int64
	Available int64
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits: required %d, available %d", e.Required, e.Available)
}

// DatastoreError marks a failure of the underlying datastore.
type DatastoreError struct {
	Op  string
	Err error
}

func (e *DatastoreError) Error() string {
	return fmt.Sprintf("datastore %s: %v", e.Op, e.Err)
}

func (e *DatastoreError) Unwrap() error { return e.Err }

// Datastore wraps err as a DatastoreError unless it is nil or already a domain error.
func Datastore(op string, err error) error {
	if err == nil {
		return nil
	}
	var ds *DatastoreError
	var ic *InsufficientCreditsError
	switch {
	case errors.As(err, &ds), errors.As(err, &ic),
		errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrResourceNotFound),
		errors.Is(err, ErrDuplicateJob), errors.Is(err, ErrAlreadyGranted):
		return err
	}
	return &DatastoreError{Op: op, Err: err}
}
