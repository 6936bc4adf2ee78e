package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/next-trace/scg-catalog/attachment"
	"github.com/next-trace/scg-catalog/catalog"
	apiError "github.com/next-trace/scg-catalog/error"
	"github.com/next-trace/scg-catalog/internal/store"
	"github.com/next-trace/scg-catalog/transport/httperr"
)

const (
	// multipartOverhead allows for boundaries and part headers on top of the attachment itself.
	multipartOverhead = 64 << 10
	maxNameLength     = 255
)

// UploadResult is returned after a document is stored.
type UploadResult struct {
	Name        string `json:"name"`
	Length      int64  `json:"length"`
	ContentType string `json:"content_type"`
}

func (s *Server) registerDocuments() {
	s.router.Post("/documents", s.uploadDocument)
	s.router.Get("/documents/{name}", s.getDocument)
}

func (s *Server) getDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if len(name) > maxNameLength {
		httperr.Write(w, r, catalog.Request.Malformed(fmt.Sprintf("document names are at most %d bytes", maxNameLength)))
		return
	}

	doc, err := s.store.Get(r.Context(), name)
	if errors.Is(err, store.ErrNotFound) {
		httperr.Write(w, r, catalog.Document.DocumentNotFound(name))
		return
	}

	if err != nil {
		httperr.Write(w, r, fmt.Errorf("load document %s: %w", name, err))
		return
	}

	if !doc.Intact() {
		httperr.Write(w, r, catalog.Document.DocumentStoredIncorrectly(doc.Name))
		return
	}

	ct := doc.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}

	w.Header().Set("Content-Type", ct)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Data)
}

// uploadDocument accepts multipart/form-data with the attachment in the "file" field.
func (s *Server) uploadDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload+multipartOverhead)

	mr, err := r.MultipartReader()
	if err != nil {
		httperr.Write(w, r, catalog.Request.Malformed("expected a multipart/form-data body"))
		return
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			httperr.Write(w, r, catalog.Request.Malformed(`missing "file" part`))
			return
		}

		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				httperr.Write(w, r, catalog.Document.AttachmentTooLarge("", s.maxUpload))
				return
			}

			httperr.Write(w, r, catalog.Request.Malformed("invalid multipart body"))
			return
		}

		if part.FormName() != "file" {
			_ = part.Close()
			continue
		}

		desc, err := attachment.FromPart(part)
		if err != nil {
			httperr.Write(w, r, err)
			return
		}

		content, err := attachment.Read(desc, part, s.maxUpload)
		if err != nil {
			httperr.Write(w, r, s.readFailure(r, desc.Name, err))
			return
		}

		doc := store.Document{
			Name:           content.Name,
			ContentType:    content.ContentType,
			DeclaredLength: content.DeclaredLength,
			Data:           content.Data,
			StoredAt:       time.Now().UTC(),
		}
		if err := s.store.Put(r.Context(), doc); err != nil {
			httperr.Write(w, r, fmt.Errorf("store document %s: %w", doc.Name, err))
			return
		}

		log.WithContext(r.Context()).WithFields(log.Fields{
			"name":   doc.Name,
			"length": doc.DeclaredLength,
		}).Info("document stored")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(UploadResult{
			Name:        doc.Name,
			Length:      doc.DeclaredLength,
			ContentType: doc.ContentType,
		})

		return
	}
}

// readFailure maps attachment read errors onto the catalog. Errors already from the
// catalog pass through. A failing request body is the client's fault, so anything
// else (truncated parts, missing closing boundary) is request.malformed.
func (s *Server) readFailure(r *http.Request, name string, err error) error {
	if _, ok := apiError.As(err); ok {
		return err
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return catalog.Document.AttachmentTooLarge(name, s.maxUpload)
	}

	log.WithContext(r.Context()).WithError(err).WithField("name", name).Warn("read attachment")

	return catalog.Request.Malformed("invalid multipart body")
}
