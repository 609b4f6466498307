package pipeline

import (
	"log/slog"

	gmailapi "google.golang.org/api/gmail/v1"

	"github.com/teemow/mailsift/internal/extract"
	"github.com/teemow/mailsift/internal/gmail"
	"github.com/teemow/mailsift/internal/logging"
)

// untitledAttachment is used when a qualifying part declares no filename
const untitledAttachment = "untitled_attachment"

// Processor turns one candidate message into at most one output record.
//
// Per message it fetches the full message, walks the part tree for the first
// attachment matching the MIME allow-list, downloads and decodes it, and runs
// text extraction. Only the first qualifying attachment is processed; the
// rest are ignored. Every failure on this path is local to the message.
type Processor struct {
	Source       MessageSource
	AllowedTypes []string
	Query        string
	Logger       *slog.Logger
}

func (p *Processor) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// Process runs the per-message pipeline for a single message ID.
//
// It returns either a record to emit or the reason the message was dropped,
// never both and never an error: the processor is the isolation boundary
// between messages, so everything that goes wrong here is logged and
// reported as a DropReason.
func (p *Processor) Process(messageID string) (rec *Record, reason DropReason) {
	logger := p.logger().With(logging.MessageID(messageID))

	defer func() {
		if r := recover(); r != nil {
			logger.Error("unexpected failure while processing message",
				slog.Any("panic", r))
			rec = nil
			reason = DropUnexpectedFailure
		}
	}()

	msg, err := p.Source.GetMessage(messageID)
	if err != nil {
		logger.Warn("failed to fetch message", logging.Err(err))
		return nil, DropMessageFetchFailed
	}

	subject := gmail.Subject(msg)
	date := gmail.Date(msg)

	// A message without an explicit parts list is treated as a single root part
	var parts []*gmailapi.MessagePart
	if msg.Payload != nil {
		parts = msg.Payload.Parts
		if len(parts) == 0 {
			parts = []*gmailapi.MessagePart{msg.Payload}
		}
	}

	matches := gmail.FindMatchingParts(parts, p.AllowedTypes)
	if len(matches) == 0 {
		logger.Info("no matching attachment",
			logging.Status(logging.StatusSkipped))
		return nil, DropNoMatchingAttachment
	}

	// Only the first qualifying attachment is processed per message
	part := matches[0]
	filename := part.Filename
	if filename == "" {
		filename = untitledAttachment
	}

	logger.Info("found target attachment",
		slog.String("filename", filename),
		slog.String("mime_type", part.MimeType))

	data, err := p.Source.GetAttachment(messageID, part.Body.AttachmentId)
	if err != nil {
		logger.Warn("failed to fetch attachment",
			slog.String("attachment_id", part.Body.AttachmentId),
			logging.Err(err))
		return nil, DropAttachmentFetchFailed
	}

	result, err := extract.Text(extract.Payload{
		Data:     data,
		MimeType: part.MimeType,
		Filename: filename,
	})
	if err != nil {
		logger.Warn("failed to extract text from attachment", logging.Err(err))
		return nil, DropExtractionFailed
	}
	if result.Text == "" {
		logger.Info("attachment produced no text",
			logging.Status(logging.StatusSkipped))
		return nil, DropEmptyText
	}

	logger.Info("extracted attachment text",
		slog.String("filename", filename),
		slog.Int("chars", result.Chars()))

	return &Record{
		MessageID:      messageID,
		Subject:        subject,
		Date:           date,
		AttachmentName: filename,
		QueryUsed:      p.Query,
		TargetMimes:    p.AllowedTypes,
		ContentText:    result.Text,
		Bytes:          result.Bytes,
	}, DropNone
}
