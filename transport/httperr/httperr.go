// Package httperr renders catalog errors as RFC 9457 problem documents over HTTP.
package httperr

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2/negotiation"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/next-trace/scg-catalog/catalog"
	apiError "github.com/next-trace/scg-catalog/error"
)

// Header names set on every error response.
const (
	HeaderErrorCode = "X-Error-Code"
	ContentTypeJSON = "application/problem+json"
	ContentTypeCBOR = "application/problem+cbor"
)

// offered lists the negotiable encodings, preferred first.
var offered = []string{"application/json", "application/cbor"}

// Write sends err to w as a problem document.
// Errors outside the catalog are logged with their cause and sent as internal.error.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	e := catalog.Ensure(err)
	p := e.Problem()
	p.Instance = "urn:uuid:" + uuid.NewString()

	record(r, e, err, p.Instance)

	ct, body, mErr := encode(r.Header.Get("Accept"), p)
	if mErr != nil {
		log.WithError(mErr).WithField("code", e.Code()).Error("encode problem")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", ct)
	h.Set("Content-Length", strconv.Itoa(len(body)))
	h.Set(HeaderErrorCode, e.Code())
	w.WriteHeader(p.Status)
	_, _ = w.Write(body)
}

func encode(accept string, p apiError.Problem) (string, []byte, error) {
	if prefersCBOR(accept) {
		b, err := cbor.Marshal(p)
		return ContentTypeCBOR, b, err
	}

	b, err := json.Marshal(p)
	return ContentTypeJSON, b, err
}

// prefersCBOR reports whether CBOR wins Accept negotiation. JSON wins ties and is
// the default when neither type is acceptable.
func prefersCBOR(accept string) bool {
	if accept == "" {
		return false
	}

	return negotiation.SelectQValue(accept, offered) == "application/cbor"
}

func record(r *http.Request, e *apiError.Error, cause error, instance string) {
	ctx := r.Context()

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(
		attribute.String("error.code", e.Code()),
		attribute.Int("http.response.status_code", e.HTTPStatus()),
	)

	fields := log.Fields{
		"code":     e.Code(),
		"status":   e.HTTPStatus(),
		"method":   r.Method,
		"path":     r.URL.Path,
		"instance": instance,
	}
	if sc := span.SpanContext(); sc.IsValid() {
		fields["trace_id"] = sc.TraceID().String()
	}

	entry := log.WithContext(ctx).WithFields(fields)

	if e.HTTPStatus() >= http.StatusInternalServerError {
		span.RecordError(cause)
		span.SetStatus(codes.Error, e.Code())
		entry.WithError(cause).Error(e.Title())
		return
	}

	entry.Info(e.Title())
}
