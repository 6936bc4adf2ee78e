// Package server exposes the error catalog and a document upload flow over HTTP.
package server

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/next-trace/scg-catalog/internal/store"
)

// Server owns the router and its dependencies.
type Server struct {
	store     store.Store
	maxUpload int64
	router    chi.Router
	api       huma.API
}

// New builds a Server. maxUpload bounds a single attachment in bytes.
func New(st store.Store, maxUpload int64) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)

	s := &Server{
		store:     st,
		maxUpload: maxUpload,
		router:    r,
		api:       humachi.New(r, huma.DefaultConfig("Error Catalog", "1.0.0")),
	}

	s.registerCatalog()
	s.registerDocuments()

	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }
