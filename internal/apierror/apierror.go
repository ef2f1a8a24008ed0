// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// StatusError classifies a domain error so handlers can pick the HTTP status
// without string-matching messages. The taxonomy is not-found, bad-request,
// conflict, internal; anything unclassified is treated as internal.
type StatusError struct {
	Status int
	Msg    string
}

func (e *StatusError) Error() string { return e.Msg }

func NotFound(msg string) error   { return &StatusError{Status: http.StatusNotFound, Msg: msg} }
func BadRequest(msg string) error { return &StatusError{Status: http.StatusBadRequest, Msg: msg} }
func Conflict(msg string) error   { return &StatusError{Status: http.StatusConflict, Msg: msg} }

// StatusOf returns the HTTP status for err, defaulting to 500.
func StatusOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return http.StatusInternalServerError
}
