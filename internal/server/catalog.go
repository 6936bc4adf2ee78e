package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/next-trace/scg-catalog/catalog"
	"github.com/next-trace/scg-catalog/transport/httperr"
)

// Entry is the public view of a catalog definition.
type Entry struct {
	Code       string `json:"code" yaml:"code" doc:"Stable machine-readable code"`
	Category   string `json:"category" yaml:"category"`
	Status     string `json:"status" yaml:"status" doc:"Transport status name"`
	HTTPStatus int    `json:"http_status" yaml:"http_status"`
	Summary    string `json:"summary" yaml:"summary"`
}

func entryOf(d catalog.Definition) Entry {
	return Entry{
		Code:       d.Code,
		Category:   d.Category,
		Status:     d.Status.String(),
		HTTPStatus: d.Status.HTTP(),
		Summary:    d.Summary,
	}
}

// Entries lists the catalog ordered by code.
func Entries() []Entry {
	defs := catalog.Definitions()
	out := make([]Entry, len(defs))
	for i, d := range defs {
		out[i] = entryOf(d)
	}

	return out
}

type ListErrorsOutput struct {
	Body []Entry
}

func (s *Server) registerCatalog() {
	huma.Register(s.api, huma.Operation{
		OperationID: "list-errors",
		Method:      http.MethodGet,
		Path:        "/errors",
		Summary:     "List the error catalog",
		Tags:        []string{"Errors"},
	}, func(_ context.Context, _ *struct{}) (*ListErrorsOutput, error) {
		return &ListErrorsOutput{Body: Entries()}, nil
	})

	s.router.Get("/errors/{code}", getError)
}

// getError describes one entry. Unknown codes are rendered by httperr.
func getError(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	d, ok := catalog.Lookup(code)
	if !ok {
		httperr.Write(w, r, catalog.Request.UnknownErrorCode(code))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(entryOf(d))
}
