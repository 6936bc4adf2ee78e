package error

import (
	"encoding/json"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// Problem is the wire shape of an Error (RFC 9457 fields plus the catalog code).
type Problem struct {
	Code     string `json:"code" cbor:"code"`
	Title    string `json:"title" cbor:"title"`
	Status   int    `json:"status" cbor:"status"`
	Detail   string `json:"detail" cbor:"detail"`
	Instance string `json:"instance,omitempty" cbor:"instance,omitempty"`
}

// Problem returns the wire representation of e.
func (e *Error) Problem() Problem {
	return Problem{
		Code:   e.code,
		Title:  e.title,
		Status: e.status.HTTP(),
		Detail: e.detail,
	}
}

func (e *Error) MarshalJSON() ([]byte, error) { return json.Marshal(e.Problem()) }

func (e *Error) MarshalCBOR() ([]byte, error) { return cbor.Marshal(e.Problem()) }

// ContentType maps a negotiated media type to its problem variant.
func (e *Error) ContentType(ct string) string {
	switch {
	case strings.HasPrefix(ct, "application/json"):
		return "application/problem+json"
	case strings.HasPrefix(ct, "application/cbor"):
		return "application/problem+cbor"
	}

	return ct
}
