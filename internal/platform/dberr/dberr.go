// Copyright (c) 2026 Melodia. All rights reserved.
// Author: trong.vandt@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vantrong/melodia/internal/platform/apperr"
)

// PostgreSQL SQLSTATE codes the catalog cares about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return apperr.Conflict("Resource already exists")
		case codeForeignKeyViolation:
			// A broken reference is caller input, not a server fault:
			// e.g. an album pointing at a missing artist.
			return apperr.ValidationError("Referenced resource does not exist")
		}
	}

	// Anything else is a storage fault and surfaces as a 500.
	return apperr.Internal(err)
}
