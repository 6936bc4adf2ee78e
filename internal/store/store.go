// Package store persists uploaded documents for the errcatalog service.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when no document has the requested name.
var ErrNotFound = errors.New("store: document not found")

// Document is a stored attachment together with the length it declared on upload.
type Document struct {
	Name           string    `json:"name"`
	ContentType    string    `json:"content_type"`
	DeclaredLength int64     `json:"declared_length"`
	Data           []byte    `json:"data"`
	StoredAt       time.Time `json:"stored_at"`
}

// Intact reports whether the stored bytes still match the declared length.
func (d Document) Intact() bool { return int64(len(d.Data)) == d.DeclaredLength }

// Store is the document persistence port.
type Store interface {
	Put(ctx context.Context, doc Document) error
	Get(ctx context.Context, name string) (Document, error)
}
