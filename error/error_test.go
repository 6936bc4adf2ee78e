package error_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"

	apiError "github.com/next-trace/scg-catalog/error"
)

func TestNewAndGetters(t *testing.T) {
	t.Parallel()

	e := apiError.New("document.stored.incorrectly", "bad doc", "contact support", apiError.StatusNotFound)

	if got, want := e.Code(), "document.stored.incorrectly"; got != want {
		t.Fatalf("Code=%q want=%q", got, want)
	}

	if got, want := e.Title(), "bad doc"; got != want {
		t.Fatalf("Title=%q want=%q", got, want)
	}

	if got, want := e.Detail(), "contact support"; got != want {
		t.Fatalf("Detail=%q want=%q", got, want)
	}

	if got, want := e.Status(), apiError.StatusNotFound; got != want {
		t.Fatalf("Status=%v want=%v", got, want)
	}

	if got, want := e.HTTPStatus(), http.StatusNotFound; got != want {
		t.Fatalf("HTTPStatus=%d want=%d", got, want)
	}

	if e.GetStatus() != e.HTTPStatus() {
		t.Fatalf("GetStatus=%d must equal HTTPStatus=%d", e.GetStatus(), e.HTTPStatus())
	}
}

func TestEBuilder_DefaultsAndOverrides(t *testing.T) {
	t.Parallel()

	e := apiError.E("internal.error", apiError.StatusInternal)
	if e.Title() != "Internal Server Error" {
		t.Fatalf("default Title=%q", e.Title())
	}

	if e.Detail() != e.Title() {
		t.Fatalf("default Detail=%q want Title", e.Detail())
	}

	e = apiError.E(
		"attachment.content.length.mismatch",
		apiError.StatusExpectationFailed,
		apiError.WithTitle("mismatch"),
		apiError.WithDetail("expected 1024, read 900"),
	)
	if e.HTTPStatus() != http.StatusExpectationFailed {
		t.Fatalf("HTTPStatus=%d want=417", e.HTTPStatus())
	}

	if e.Title() != "mismatch" || e.Detail() != "expected 1024, read 900" {
		t.Fatalf("Title=%q Detail=%q", e.Title(), e.Detail())
	}
}

func TestNilReceiverBehaviors(t *testing.T) {
	t.Parallel()

	var e *apiError.Error

	if got := e.Error(); got != "<nil>" {
		t.Fatalf("nil receiver Error()=%q", got)
	}
}

func TestErrorString_Format(t *testing.T) {
	t.Parallel()

	e := apiError.New("internal.error", "Internal error", "secret detail do-not-leak", apiError.StatusInternal)
	msg := e.Error()
	// Must include code, title, status; must not include detail.
	if !contains(msg, "internal.error") ||
		!contains(msg, "Internal error") ||
		!contains(msg, "(500)") {
		t.Fatalf("Error() missing expected parts: %q", msg)
	}

	if contains(msg, "do-not-leak") {
		t.Fatalf("Error() leaked detail: %q", msg)
	}
}

func TestAsAndHasCode(t *testing.T) {
	t.Parallel()

	e := apiError.New("document.not.found", "t", "d", apiError.StatusNotFound)
	wrapped := fmt.Errorf("load document: %w", e)

	got, ok := apiError.As(wrapped)
	if !ok || got != e {
		t.Fatalf("As should yield the wrapped *Error itself")
	}

	if !apiError.HasCode(wrapped, "document.not.found") {
		t.Fatalf("HasCode(wrapped) = false; want true")
	}

	if apiError.HasCode(wrapped, "document.stored.incorrectly") {
		t.Fatalf("HasCode matched a different code")
	}

	if _, ok := apiError.As(errors.New("plain")); ok {
		t.Fatalf("As(plain) = true; want false")
	}

	if _, ok := apiError.As(nil); ok {
		t.Fatalf("As(nil) = true; want false")
	}
}

func TestProblemEncoding(t *testing.T) {
	t.Parallel()

	e := apiError.New("attachment.content.length.mismatch", "t", "d", apiError.StatusExpectationFailed)

	raw, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}

	var p apiError.Problem
	if err := json.Unmarshal(raw, &p); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}

	if p != e.Problem() {
		t.Fatalf("json problem=%+v want=%+v", p, e.Problem())
	}

	if contains(string(raw), "instance") {
		t.Fatalf("empty instance must be omitted: %s", raw)
	}

	raw, err = cbor.Marshal(e)
	if err != nil {
		t.Fatalf("cbor.Marshal: %v", err)
	}

	var pc apiError.Problem
	if err := cbor.Unmarshal(raw, &pc); err != nil {
		t.Fatalf("cbor.Unmarshal: %v", err)
	}

	if pc.Code != e.Code() || pc.Status != http.StatusExpectationFailed {
		t.Fatalf("cbor problem=%+v", pc)
	}
}

func TestContentType(t *testing.T) {
	t.Parallel()

	e := apiError.New("c", "t", "d", apiError.StatusBadRequest)

	for in, want := range map[string]string{
		"application/json":                "application/problem+json",
		"application/json; charset=utf-8": "application/problem+json",
		"application/cbor":                "application/problem+cbor",
		"text/plain":                      "text/plain",
	} {
		if got := e.ContentType(in); got != want {
			t.Fatalf("ContentType(%q)=%q want=%q", in, got, want)
		}
	}
}

func contains(s, sub string) bool { return strings.Contains(s, sub) }

// FuzzNew checks construction is total and stores inputs verbatim.
func FuzzNew(f *testing.F) {
	f.Add("document.stored.incorrectly", "invoice.pdf", "")
	f.Add("", "", "")
	f.Fuzz(func(t *testing.T, code, title, detail string) {
		e := apiError.New(code, title, detail, apiError.StatusNotFound)
		if e.Code() != code || e.Title() != title || e.Detail() != detail {
			t.Fatalf("fields not stored verbatim: %+v", e.Problem())
		}

		if e.Error() == "" {
			t.Fatalf("Error() must not be empty")
		}
	})
}
