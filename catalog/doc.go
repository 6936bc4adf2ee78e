// Package catalog is the read-only registry of error constructors.
//
// Constructors are grouped by category (Document, Request, Internal) and are pure:
// they take already-extracted primitive values, interpolate them into the title and
// detail, and return a fully resolved *error.Error. Code and status are constant per
// constructor. The registry is populated during package initialisation and never
// changes afterwards, so every function here is safe for concurrent use.
//
//	err := catalog.Document.AttachmentContentLengthMismatch(1024, 900)
//	err.Code()       // "attachment.content.length.mismatch"
//	err.HTTPStatus() // 417
package catalog
