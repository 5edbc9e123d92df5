// Copyright (c) 2026 ApiChistes. All rights reserved.

// Package validate provides a chainable Validator for request validation.
//
// # Architecture
//
// This package is used exclusively in the service layer — never in handlers or
// storage. It ensures that business logic only operates on semantically valid data.
//
// Unlike accumulate-all validators, this one is strictly first-failure-wins:
// the order of Check calls is a visible API contract, because each failing
// rule has its own client-facing message and only the first one is returned.
package validate

import (
	"github.com/unidentifiedchris/topicos/internal/platform/apperr"
)

// ErrInvalidJSON is returned when the request body cannot be decoded.
var ErrInvalidJSON = apperr.Invalid("Formato del chiste no válido")

// Validator evaluates rules in order and keeps only the first failure.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	err *apperr.AppError
}

// Check records a failure with the given message if failed is true and no
// earlier rule has failed yet.
//
// # Example
//
//	v.Check(score < 1 || score > 10, "Puntaje debe estar entre 1 y 10")
func (v *Validator) Check(failed bool, message string) *Validator {
	if v.err == nil && failed {
		v.err = apperr.Invalid(message)
	}
	return v
}

// Err returns the first failure as an [apperr.AppError], or nil if every
// rule passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if v.err == nil {
		return nil
	}
	return v.err
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return v.err != nil
}
