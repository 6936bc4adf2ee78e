package error

import "net/http"

// Option configures an Error during construction via E().
type Option func(*Error)

// WithTitle sets the short summary during E() construction.
func WithTitle(title string) Option { return func(e *Error) { e.title = title } }

// WithDetail sets the long-form explanation during E() construction.
func WithDetail(detail string) Option { return func(e *Error) { e.detail = detail } }

// E is a minimal builder when you don’t want the full New(...) signature.
// Defaults: Title is the HTTP status text, Detail equals Title.
// The returned value is not modified after E returns.
func E(code string, status Status, opts ...Option) *Error {
	e := &Error{
		code:   code,
		status: status,
	}
	for _, o := range opts {
		o(e)
	}

	if e.title == "" {
		e.title = http.StatusText(status.HTTP())
	}

	if e.detail == "" {
		e.detail = e.title
	}

	return e
}
