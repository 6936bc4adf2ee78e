// Package attachment extracts the primitive values the catalog needs from MIME parts
// and verifies attachment content against its declared size.
//
// Everything that can be missing on a MIME part is resolved here, so catalog
// constructors only ever receive plain strings and integers.
package attachment

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/next-trace/scg-catalog/catalog"
)

// Descriptor is the metadata an attachment declares about itself.
type Descriptor struct {
	Name           string
	DeclaredLength int64
	ContentType    string
}

// Content is an attachment whose length matched its declaration.
type Content struct {
	Descriptor
	Data []byte
}

// Describe extracts a Descriptor from MIME headers.
//
// The name comes from the Content-Disposition filename parameter, falling back to the
// Content-Type name parameter, and is reduced to its final path element. The declared length comes from the Content-Disposition
// size parameter (RFC 2183), falling back to Content-Length.
func Describe(h textproto.MIMEHeader) (Descriptor, error) {
	var d Descriptor

	_, disp, _ := mime.ParseMediaType(h.Get("Content-Disposition"))
	ct, ctParams, err := mime.ParseMediaType(h.Get("Content-Type"))
	if err == nil {
		d.ContentType = ct
	}

	d.Name = strings.TrimSpace(disp["filename"])
	if d.Name == "" {
		d.Name = strings.TrimSpace(ctParams["name"])
	}

	d.Name = baseName(d.Name)
	if d.Name == "" {
		return Descriptor{}, catalog.Document.AttachmentMetadataMissing("", "filename")
	}

	size := disp["size"]
	if size == "" {
		size = h.Get("Content-Length")
	}

	n, err := strconv.ParseInt(strings.TrimSpace(size), 10, 64)
	if err != nil || n < 0 {
		return Descriptor{}, catalog.Document.AttachmentMetadataMissing(d.Name, "size")
	}

	d.DeclaredLength = n

	return d, nil
}

// baseName drops any directory the client put in a filename. Names that reduce to
// nothing usable come back empty.
func baseName(name string) string {
	if name == "" {
		return ""
	}

	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	switch name {
	case ".", "..", "/":
		return ""
	}

	return name
}

// FromPart describes a multipart part.
func FromPart(p *multipart.Part) (Descriptor, error) { return Describe(p.Header) }

// Read consumes r and checks the byte count against d.DeclaredLength.
// When limit > 0, content longer than limit is rejected without reading it all.
func Read(d Descriptor, r io.Reader, limit int64) (Content, error) {
	src := r
	if limit > 0 {
		src = io.LimitReader(r, limit+1)
	}

	var buf bytes.Buffer
	n, err := io.Copy(&buf, src)
	if err != nil {
		return Content{}, err
	}

	if limit > 0 && n > limit {
		return Content{}, catalog.Document.AttachmentTooLarge(d.Name, limit)
	}

	if n != d.DeclaredLength {
		return Content{}, catalog.Document.AttachmentContentLengthMismatch(d.DeclaredLength, n)
	}

	if d.ContentType == "" || d.ContentType == "application/octet-stream" {
		d.ContentType = mimetype.Detect(buf.Bytes()).String()
	}

	return Content{Descriptor: d, Data: buf.Bytes()}, nil
}
