package docstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Error implements repositories.RepositoryError for document store backed repositories.
type Error struct {
	op          string
	err         error
	status      int
	notFound    bool
	conflict    bool
	unavailable bool
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.op != "" {
		return fmt.Sprintf("%s: %v", e.op, e.err)
	}
	return e.err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// StatusCode returns the HTTP status returned by the store, if any.
func (e *Error) StatusCode() int {
	if e == nil {
		return 0
	}
	return e.status
}

// IsNotFound reports whether the error represents a missing document.
func (e *Error) IsNotFound() bool {
	return e != nil && e.notFound
}

// IsConflict reports whether the error represents a conflicting update.
func (e *Error) IsConflict() bool {
	return e != nil && e.conflict
}

// IsUnavailable reports whether the error represents a transient backend outage.
func (e *Error) IsUnavailable() bool {
	return e != nil && e.unavailable
}

func newStatusError(op string, status int) *Error {
	e := &Error{
		op:     op,
		err:    fmt.Errorf("store returned status %d", status),
		status: status,
	}
	switch {
	case status == http.StatusNotFound:
		e.notFound = true
	case status == http.StatusConflict || status == http.StatusPreconditionFailed:
		e.conflict = true
	case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
		e.unavailable = true
	}
	return e
}

// WrapError annotates transport errors with repository semantics. Context
// cancellations are passed through.
func WrapError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var repoErr *Error
	if errors.As(err, &repoErr) {
		if op != "" && repoErr.op == "" {
			repoErr.op = op
		}
		return repoErr
	}
	return &Error{op: op, err: err, unavailable: true}
}
