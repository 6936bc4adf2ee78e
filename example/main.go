// Package main demonstrates usage of the scg-catalog packages.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"net/http/httptest"
	"net/textproto"

	"github.com/next-trace/scg-catalog/attachment"
	"github.com/next-trace/scg-catalog/catalog"
	"github.com/next-trace/scg-catalog/transport/httperr"
)

func main() {
	// Direct construction
	e := catalog.Document.DocumentStoredIncorrectly("invoice.pdf")
	fmt.Println(e.Error(), e.HTTPStatus(), e.Code(), e.Title(), e.Detail())

	// Caller extracts primitives from the MIME part, then reads 900 of 1024 declared bytes.
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `attachment; filename="invoice.pdf"; size=1024`)

	desc, err := attachment.Describe(h)
	if err != nil {
		fmt.Println(err)
		return
	}

	_, err = attachment.Read(desc, bytes.NewReader(make([]byte, 900)), 0)
	if catalog.Is(err, catalog.AttachmentContentLengthMismatchDef) {
		fmt.Println(catalog.Ensure(err).Detail())
	}

	// Transport boundary
	rec := httptest.NewRecorder()
	httperr.Write(rec, httptest.NewRequest("POST", "/documents", nil), err)
	fmt.Println(rec.Code, rec.Body.String())

	// Anything outside the catalog is rendered as internal.error
	fmt.Println(catalog.Ensure(errors.New("row not found")).Code())
}
