package catalog

import (
	"fmt"

	apiError "github.com/next-trace/scg-catalog/error"
)

var (
	DocumentStoredIncorrectlyDef = define("Document", "document.stored.incorrectly", apiError.StatusNotFound,
		"A previously saved document cannot be retrieved because it was persisted incorrectly.")
	DocumentNotFoundDef = define("Document", "document.not.found", apiError.StatusNotFound,
		"No document exists under the requested name.")
	AttachmentContentLengthMismatchDef = define("Document", "attachment.content.length.mismatch", apiError.StatusExpectationFailed,
		"The attachment content read does not match its declared size.")
	AttachmentMetadataMissingDef = define("Document", "attachment.metadata.missing", apiError.StatusUnprocessableEntity,
		"The attachment headers lack a value required to accept it.")
	AttachmentTooLargeDef = define("Document", "attachment.too.large", apiError.StatusRequestEntityTooLarge,
		"The attachment exceeds the accepted size.")
)

// DocumentErrors groups the constructors of the Document category.
type DocumentErrors struct{}

// Document is the Document category of the catalog.
var Document DocumentErrors

// DocumentStoredIncorrectly reports a stored document that can no longer be read back.
func (DocumentErrors) DocumentStoredIncorrectly(name string) *apiError.Error {
	return DocumentStoredIncorrectlyDef.New(
		fmt.Sprintf("The document %s was stored incorrectly", name),
		"This document was not saved correctly and cannot be opened. "+
			"Please contact support so the document can be recovered.",
	)
}

// AttachmentContentLengthMismatch reports an attachment whose content is shorter or
// longer than the size it declared.
func (DocumentErrors) AttachmentContentLengthMismatch(expectedLength, actualLength int64) *apiError.Error {
	return AttachmentContentLengthMismatchDef.New(
		"Attachment content length mismatch",
		fmt.Sprintf("The attachment declared %d bytes of content but %d bytes were read. "+
			"Please upload the attachment again.", expectedLength, actualLength),
	)
}

// DocumentNotFound reports a name with no stored document.
func (DocumentErrors) DocumentNotFound(name string) *apiError.Error {
	return DocumentNotFoundDef.New(
		fmt.Sprintf("The document %s was not found", name),
		fmt.Sprintf("No document named %s exists. Check the name and try again.", name),
	)
}

// AttachmentMetadataMissing reports a header value (field) that could not be extracted.
// name may be empty when the attachment name itself is the missing field.
func (DocumentErrors) AttachmentMetadataMissing(name, field string) *apiError.Error {
	title := "Attachment metadata is missing"
	if name != "" {
		title = fmt.Sprintf("Attachment %s is missing metadata", name)
	}

	return AttachmentMetadataMissingDef.New(
		title,
		fmt.Sprintf("The attachment does not declare a valid %s. "+
			"Please attach the file again from your mail client.", field),
	)
}

// AttachmentTooLarge reports an attachment over limit bytes. name may be empty when
// the limit is hit before the attachment headers are read.
func (DocumentErrors) AttachmentTooLarge(name string, limit int64) *apiError.Error {
	title := "Attachment is too large"
	if name != "" {
		title = fmt.Sprintf("Attachment %s is too large", name)
	}

	return AttachmentTooLargeDef.New(
		title,
		fmt.Sprintf("Attachments may be at most %d bytes. Please upload a smaller file.", limit),
	)
}
