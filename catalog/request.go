package catalog

import (
	"errors"
	"fmt"

	apiError "github.com/next-trace/scg-catalog/error"
)

var (
	RequestMalformedDef = define("Request", "request.malformed", apiError.StatusBadRequest,
		"The request could not be parsed.")
	RequestUnknownErrorCodeDef = define("Request", "request.error.code.unknown", apiError.StatusNotFound,
		"No catalog entry exists for the requested error code.")
	InternalUnexpectedDef = define("Internal", "internal.error", apiError.StatusInternal,
		"An unexpected failure with no catalog entry.")
)

// RequestErrors groups the constructors of the Request category.
type RequestErrors struct{}

// Request is the Request category of the catalog.
var Request RequestErrors

// Malformed reports a request body or parameter that could not be read; reason is
// appended to the detail.
func (RequestErrors) Malformed(reason string) *apiError.Error {
	return RequestMalformedDef.New(
		"Malformed request",
		fmt.Sprintf("The request could not be read: %s.", reason),
	)
}

// UnknownErrorCode reports a lookup of a code the catalog does not define.
func (RequestErrors) UnknownErrorCode(code string) *apiError.Error {
	return RequestUnknownErrorCodeDef.New(
		fmt.Sprintf("Unknown error code %s", code),
		fmt.Sprintf("The catalog has no entry for %s. List /errors for the defined codes.", code),
	)
}

// InternalErrors groups the constructors of the Internal category.
type InternalErrors struct{}

// Internal is the Internal category of the catalog.
var Internal InternalErrors

// Unexpected is the client-safe fallback for failures outside the catalog.
func (InternalErrors) Unexpected() *apiError.Error {
	return InternalUnexpectedDef.New(
		"Internal error",
		"Something went wrong on our side. Please try again later.",
	)
}

// Ensure converts any error to *Error.
//
// Behavior:
//   - nil input => nil output
//   - if err's chain holds an *Error => that *Error
//   - otherwise Internal.Unexpected(); err itself is not retained
func Ensure(err error) *apiError.Error {
	if err == nil {
		return nil
	}

	var e *apiError.Error
	if errors.As(err, &e) && e != nil {
		return e
	}

	return Internal.Unexpected()
}
