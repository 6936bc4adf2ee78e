package error

import (
	"errors"
)

// As finds the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if err == nil || !errors.As(err, &e) || e == nil {
		return nil, false
	}

	return e, true
}

// HasCode reports whether err's chain carries an *Error with the given code.
func HasCode(err error, code string) bool {
	e, ok := As(err)

	return ok && e.code == code
}
