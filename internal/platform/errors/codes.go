// Package errors provides structured error handling for the account service.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Account validation errors
	CodeAccountMissing       Code = "ACCOUNT_MISSING"
	CodeAccountIDMissing     Code = "ACCOUNT_ID_MISSING"
	CodeAccountNameEmpty     Code = "ACCOUNT_NAME_EMPTY"
	CodeAccountPasswordEmpty Code = "ACCOUNT_PASSWORD_EMPTY"

	// Uniqueness errors
	CodeAccountNameTaken Code = "ACCOUNT_NAME_TAKEN"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	// BadRequest - validation failures, bad input
	case CodeAccountMissing,
		CodeAccountIDMissing,
		CodeAccountNameEmpty,
		CodeAccountPasswordEmpty:
		return http.StatusBadRequest

	// Conflict - unique resource constraint
	case CodeAccountNameTaken:
		return http.StatusConflict

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
