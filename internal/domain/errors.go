package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrStorage    = errors.New("storage failure")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
//
// Field keys are locations prefixed by where the value came from, for example
// "body.title", "query.limit" or "path.id". The bare key "body" refers to the
// request body as a whole.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ServiceError is a failure that carries a client-safe Detail message next to
// the underlying cause. Kind is one of the sentinel errors above and decides
// how the failure is surfaced; Err is kept for diagnostics only and must never
// be shown to callers.
type ServiceError struct {
	Kind   error
	Detail string
	Err    error
}

func (e *ServiceError) Error() string {
	if e.Err == nil {
		return e.Detail
	}
	return e.Detail + ": " + e.Err.Error()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *ServiceError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NotFound returns a ServiceError of kind ErrNotFound with the given detail.
func NotFound(detail string) error {
	return &ServiceError{Kind: ErrNotFound, Detail: detail}
}

// StorageFailure returns a ServiceError of kind ErrStorage that hides cause
// behind detail.
func StorageFailure(detail string, cause error) error {
	return &ServiceError{Kind: ErrStorage, Detail: detail, Err: cause}
}

// Detail returns the client-safe message carried by err, if any.
func Detail(err error) (string, bool) {
	var serr *ServiceError
	if errors.As(err, &serr) && serr.Detail != "" {
		return serr.Detail, true
	}
	return "", false
}
