// Package contract exposes the minimal error interface used by other packages.
//
// Implementations must be immutable once constructed.
package contract

// Error is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Respect Go initialisms (HTTPStatus).
//   - Return fully resolved Title and Detail strings (no lazy formatting).
//   - Never change any getter's result after construction.
type Error interface {
	error
	Code() string
	Title() string
	Detail() string
	HTTPStatus() int
}
