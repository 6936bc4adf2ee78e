// Package error provides the immutable, transport-agnostic error value produced by the catalog.
//
// It defines a single concrete type Error whose fields are fully resolved at construction
// and exposed through getters only.
package error

import (
	"fmt"

	"github.com/next-trace/scg-catalog/contract"
)

// Error is the canonical error value for catalog-backed failures.
//
// Fields:
//   - Code:   stable, machine-facing code (e.g. "document.stored.incorrectly")
//   - Title:  short human summary, may embed interpolated context
//   - Detail: long-form explanation for end users
//   - Status: transport-level status, mapped by adapters
type Error struct {
	code   string
	title  string
	detail string
	status Status
}

// compile-time guarantee that *Error implements contract.Error
var _ contract.Error = (*Error)(nil)

// ------ standard error interface

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	// Compact, dev-friendly string. Detail is left to transport encoders.
	return fmt.Sprintf("%s (%d): %s", e.code, e.status.HTTP(), e.title)
}

// ------ contract.Error getters

func (e *Error) Code() string    { return e.code }
func (e *Error) Title() string   { return e.title }
func (e *Error) Detail() string  { return e.detail }
func (e *Error) Status() Status  { return e.status }
func (e *Error) HTTPStatus() int { return e.status.HTTP() }

// GetStatus returns the HTTP status. It lets *Error act as a huma.StatusError.
func (e *Error) GetStatus() int { return e.status.HTTP() }

// ------ core constructors

// New creates a new Error with the provided fields.
// It never fails and performs no validation; catalog definitions guarantee a valid status.
func New(code, title, detail string, status Status) *Error {
	return &Error{
		code:   code,
		title:  title,
		detail: detail,
		status: status,
	}
}
