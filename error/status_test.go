package error_test

import (
	"net/http"
	"testing"

	apiError "github.com/next-trace/scg-catalog/error"
)

func TestStatus_HTTPMapping(t *testing.T) {
	t.Parallel()

	for _, item := range []struct {
		status   apiError.Status
		expected int
	}{
		{apiError.StatusBadRequest, http.StatusBadRequest},
		{apiError.StatusNotFound, http.StatusNotFound},
		{apiError.StatusPreconditionFailed, http.StatusPreconditionFailed},
		{apiError.StatusRequestEntityTooLarge, http.StatusRequestEntityTooLarge},
		{apiError.StatusExpectationFailed, http.StatusExpectationFailed},
		{apiError.StatusUnprocessableEntity, http.StatusUnprocessableEntity},
		{apiError.StatusInternal, http.StatusInternalServerError},
		{apiError.StatusUnavailable, http.StatusServiceUnavailable},
	} {
		if got := item.status.HTTP(); got != item.expected {
			t.Fatalf("%s.HTTP()=%d want=%d", item.status, got, item.expected)
		}
	}
}

func TestStatus_UnknownIsInvalid(t *testing.T) {
	t.Parallel()

	if apiError.StatusUnknown.Valid() {
		t.Fatalf("StatusUnknown must not be valid")
	}

	if got := apiError.Status(200).HTTP(); got != http.StatusInternalServerError {
		t.Fatalf("out-of-range HTTP()=%d want=500", got)
	}

	if got := apiError.Status(200).String(); got != "unknown" {
		t.Fatalf("out-of-range String()=%q", got)
	}
}

func TestStatus_ParseRoundTrip(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}

	for _, s := range apiError.Statuses() {
		if !s.Valid() {
			t.Fatalf("Statuses() returned invalid %d", s)
		}

		if seen[s.String()] {
			t.Fatalf("duplicate status name %q", s)
		}
		seen[s.String()] = true

		got, ok := apiError.ParseStatus(s.String())
		if !ok || got != s {
			t.Fatalf("ParseStatus(%q)=%v,%v want=%v", s, got, ok, s)
		}
	}

	if _, ok := apiError.ParseStatus("unknown"); ok {
		t.Fatalf("ParseStatus(unknown) must fail")
	}
}
