package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ValidationError is raised before any network call.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return strings.Join(parts, "; ")
}

// TransportError covers network failures and non-2xx answers.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// BackendRejection is a well-formed GraphQL error answer.
type BackendRejection struct {
	Op       string
	Messages []string
}

func (e *BackendRejection) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("%s: rejected by backend", e.Op)
	}
	return fmt.Sprintf("%s: %s", e.Op, strings.Join(e.Messages, "; "))
}

var (
	ErrNotFound       = errors.New("record not found")
	ErrNotConfirmed   = errors.New("action not confirmed")
	ErrSaveInProgress = errors.New("save already in progress")
)

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
