package pipeline

import (
	gmail "google.golang.org/api/gmail/v1"
)

// Record is one output row: everything downstream consumers need about a
// single extracted attachment. The JSON field names match the dataset schema
// consumers already depend on.
type Record struct {
	MessageID      string   `json:"messageId"`
	Subject        string   `json:"subject"`
	Date           string   `json:"date"`
	AttachmentName string   `json:"attachmentName"`
	QueryUsed      string   `json:"gmailQueryUsed"`
	TargetMimes    []string `json:"targetMimes"`
	// ContentText is the extracted text, ready for downstream processing
	ContentText string `json:"attachmentContentText"`

	// Bytes is the decoded attachment payload size. It feeds logging and
	// metrics and is not part of the output schema.
	Bytes int `json:"-"`
}

// DropReason explains why a message produced no output record.
// Per-message failures are reported this way instead of as errors: a dropped
// message must never abort the batch.
type DropReason string

const (
	// DropNone means the message was not dropped
	DropNone DropReason = ""

	// DropMessageFetchFailed means the full message could not be retrieved
	DropMessageFetchFailed DropReason = "message_fetch_failed"

	// DropNoMatchingAttachment means no part matched the MIME allow-list
	DropNoMatchingAttachment DropReason = "no_matching_attachment"

	// DropAttachmentFetchFailed means the attachment payload could not be
	// retrieved or decoded
	DropAttachmentFetchFailed DropReason = "attachment_fetch_failed"

	// DropExtractionFailed means text extraction raised an error
	DropExtractionFailed DropReason = "extraction_failed"

	// DropEmptyText means extraction succeeded but produced no text
	DropEmptyText DropReason = "empty_text"

	// DropUnexpectedFailure means the per-message isolation boundary caught
	// a failure that no other reason covers
	DropUnexpectedFailure DropReason = "unexpected_failure"
)

// MessageSource is the mail-retrieval collaborator the processor consumes.
// *gmail.Client satisfies it; tests provide fakes.
type MessageSource interface {
	// GetMessage retrieves a full message (headers and part tree) by ID
	GetMessage(messageID string) (*gmail.Message, error)

	// GetAttachment retrieves and decodes an attachment's binary payload
	GetAttachment(messageID, attachmentID string) ([]byte, error)
}

// Sink is the output collaborator records are streamed to.
// Implementations are append-only; records arrive in emission order.
type Sink interface {
	Push(rec *Record) error
}
