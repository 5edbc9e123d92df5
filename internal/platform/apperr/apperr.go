// Copyright (c) 2026 ApiChistes. All rights reserved.

/*
Package apperr defines the centralized error handling framework for ApiChistes.

It provides a rich error type that bridges the gap between low-level Domain/Storage
errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing a machine-readable Code and the client-facing message.
  - Mapping: Explicit mapping from AppError to HTTP status codes.

Every error that leaves the service layer should be wrapped as an [AppError] to ensure
consistent API responses.

Status conventions of this API (inherited wire contract):

  - Invalid input and not-found both answer 400; clients distinguish them by message.
  - 422 is reserved for the "collection is empty" case on the random-joke endpoint.
  - 500 covers storage and upstream provider faults.
*/
package apperr

import (
	"errors"
	"net/http"
)

// AppError is the canonical error type for the ApiChistes API.
//
// It carries an HTTP status code, a machine-readable code, and a client-safe
// message.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND"). Log-only.
	Code string `json:"-"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"message"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// Invalid creates a 400 [AppError] for a malformed, out-of-range, or
// forbidden field in a client-supplied request.
func Invalid(msg string) *AppError {
	return &AppError{
		Code:       "INVALID_INPUT",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NotFound creates an [AppError] for a referenced record, category, or score
// bucket that does not exist.
//
// This API answers not-found lookups with 400, not 404 — the status is part
// of the inherited wire contract.
func NotFound(msg string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

// Unprocessable creates a 422 [AppError].
//
// It is used when there is nothing to fetch (the random-joke endpoint on an
// empty collection), as opposed to asking for something specific that does
// not exist, which is [NotFound].
func Unprocessable(msg string) *AppError {
	return &AppError{
		Code:       "UNPROCESSABLE",
		Message:    msg,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] for a storage or upstream provider fault.
// The cause is stored for logging but is never sent to the client.
func Internal(msg string, cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    msg,
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
