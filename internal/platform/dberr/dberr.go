// Copyright (c) 2026 ApiChistes. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/unidentifiedchris/topicos/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	//
	// Services match on it with [errors.Is] and substitute their own
	// client-facing message; the wrapped default is never sent as-is.
	ErrNotFound = apperr.NotFound("No se puede encontrar el recurso")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Unknown query errors become Internal Server Errors
	return apperr.Internal("Error interno del servidor", fmt.Errorf("%s: %w", action, err))
}
