// Package errors provides structured error handling for club services.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Submission errors
	CodeFieldsRequired Code = "FIELDS_REQUIRED"
	CodeNameTooShort   Code = "NAME_TOO_SHORT"
	CodeEmailInvalid   Code = "EMAIL_INVALID"
	CodePhoneInvalid   Code = "PHONE_INVALID"
	CodeBodyInvalid    Code = "BODY_INVALID"

	// Uniqueness errors
	CodeEmailTaken      Code = "EMAIL_TAKEN"
	CodeRollNumberTaken Code = "ROLL_NUMBER_TAKEN"

	// Availability errors
	CodeJoinClosed  Code = "JOIN_CLOSED"
	CodeNotFound    Code = "NOT_FOUND"
	CodeUnavailable Code = "UNAVAILABLE"
)

// HTTPStatus maps the code to the HTTP status used by the JSON API.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeFieldsRequired, CodeNameTooShort, CodeEmailInvalid, CodePhoneInvalid, CodeBodyInvalid:
		return http.StatusBadRequest
	case CodeEmailTaken, CodeRollNumberTaken:
		return http.StatusConflict
	case CodeJoinClosed:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
