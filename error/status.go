package error

import "net/http"

// Status is the transport-level status an Error reports.
//
// The set is closed: transport adapters map each value onto their own wire
// status (HTTP status line, gRPC code). The zero value is not a valid status.
type Status uint8

const (
	StatusUnknown Status = iota
	StatusBadRequest
	StatusUnauthorized
	StatusForbidden
	StatusNotFound
	StatusConflict
	StatusGone
	StatusPreconditionFailed
	StatusRequestEntityTooLarge
	StatusUnsupportedMediaType
	StatusExpectationFailed
	StatusUnprocessableEntity
	StatusTooManyRequests
	StatusInternal
	StatusNotImplemented
	StatusUnavailable
)

type statusInfo struct {
	name string
	http int
}

var statusTable = [...]statusInfo{
	StatusUnknown:               {"unknown", http.StatusInternalServerError},
	StatusBadRequest:            {"bad_request", http.StatusBadRequest},
	StatusUnauthorized:          {"unauthorized", http.StatusUnauthorized},
	StatusForbidden:             {"forbidden", http.StatusForbidden},
	StatusNotFound:              {"not_found", http.StatusNotFound},
	StatusConflict:              {"conflict", http.StatusConflict},
	StatusGone:                  {"gone", http.StatusGone},
	StatusPreconditionFailed:    {"precondition_failed", http.StatusPreconditionFailed},
	StatusRequestEntityTooLarge: {"request_entity_too_large", http.StatusRequestEntityTooLarge},
	StatusUnsupportedMediaType:  {"unsupported_media_type", http.StatusUnsupportedMediaType},
	StatusExpectationFailed:     {"expectation_failed", http.StatusExpectationFailed},
	StatusUnprocessableEntity:   {"unprocessable_entity", http.StatusUnprocessableEntity},
	StatusTooManyRequests:       {"too_many_requests", http.StatusTooManyRequests},
	StatusInternal:              {"internal", http.StatusInternalServerError},
	StatusNotImplemented:        {"not_implemented", http.StatusNotImplemented},
	StatusUnavailable:           {"unavailable", http.StatusServiceUnavailable},
}

// Statuses returns every valid status in declaration order.
func Statuses() []Status {
	out := make([]Status, 0, len(statusTable)-1)
	for s := StatusBadRequest; int(s) < len(statusTable); s++ {
		out = append(out, s)
	}

	return out
}

// Valid reports whether s is one of the declared statuses (StatusUnknown excluded).
func (s Status) Valid() bool { return s > StatusUnknown && int(s) < len(statusTable) }

// HTTP returns the HTTP status code for s. Invalid statuses map to 500.
func (s Status) HTTP() int {
	if !s.Valid() {
		return http.StatusInternalServerError
	}

	return statusTable[s].http
}

func (s Status) String() string {
	if !s.Valid() {
		return statusTable[StatusUnknown].name
	}

	return statusTable[s].name
}

// ParseStatus is the inverse of Status.String.
func ParseStatus(name string) (Status, bool) {
	for _, s := range Statuses() {
		if statusTable[s].name == name {
			return s, true
		}
	}

	return StatusUnknown, false
}
