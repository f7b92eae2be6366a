package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Authentication related errors
var (
	ErrUnknownUser        = errors.Wrap(NotFoundError, "unknown user")
	ErrInvalidCredentials = errors.Wrap(UnAuthorizedError, "invalid credentials")
)

// Mutation gateway related errors
var (
	// ErrUnknownTable: the requested table resolves to no known columns.
	ErrUnknownTable = errors.Wrap(BadParameterError, "unknown table")

	// ErrNoValidFields: whitelisting left nothing to write.
	ErrNoValidFields = errors.Wrap(BadParameterError, "no valid fields in payload")

	// ErrTableNotDeletable: the table is not on the destructive-operation allow-list.
	ErrTableNotDeletable = errors.Wrap(ForbiddenError, "table does not allow deletion")

	// ErrTableNotWritable: the table is reserved for dedicated operations.
	ErrTableNotWritable = errors.Wrap(ForbiddenError, "table is not accessible through generic record operations")

	ErrLinkNotFound = errors.Wrap(NotFoundError, "link does not exist")
)

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")

// ConflictOnFieldError carries the column whose uniqueness constraint was
// violated, so the API can answer "email already exists" instead of a
// generic conflict message.
type ConflictOnFieldError struct {
	Field string
}

func (e ConflictOnFieldError) Error() string {
	return e.Field + " already exists"
}

func (e ConflictOnFieldError) Unwrap() error {
	return ConflictError
}
