package gmail

import (
	"encoding/base64"
	"fmt"
	"strings"

	gmail "google.golang.org/api/gmail/v1"
)

const (
	// MaxAttachmentSize defines the maximum attachment size in bytes (25MB)
	MaxAttachmentSize = 25 * 1024 * 1024
)

// AttachmentInfo represents an attachment's metadata
type AttachmentInfo struct {
	MessageID    string `json:"messageId"`
	PartID       string `json:"partId"`
	AttachmentID string `json:"attachmentId"`
	Filename     string `json:"filename"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
}

// ListAttachments extracts all attachments from a message
func (c *Client) ListAttachments(messageID string) ([]*AttachmentInfo, error) {
	msg, err := c.GetMessage(messageID)
	if err != nil {
		return nil, err
	}

	return attachmentInfos(messageID, msg), nil
}

// attachmentInfos collects attachment metadata from a message's part tree.
// Filenames are sanitized before they leave this package; they end up in
// tool output that consumers may use as paths.
func attachmentInfos(messageID string, msg *gmail.Message) []*AttachmentInfo {
	var attachments []*AttachmentInfo
	walkParts(msg.Payload, func(part *gmail.MessagePart) {
		if part.Filename != "" && part.Body != nil && part.Body.AttachmentId != "" {
			attachments = append(attachments, &AttachmentInfo{
				MessageID:    messageID,
				PartID:       part.PartId,
				AttachmentID: part.Body.AttachmentId,
				Filename:     SanitizeFilename(part.Filename),
				MimeType:     part.MimeType,
				Size:         part.Body.Size,
			})
		}
	})

	return attachments
}

// FindMatchingParts recursively searches message parts for downloadable
// attachments whose MIME type is in the allow-list.
//
// A part qualifies only if it carries a non-empty attachment ID: an inline
// body of a matching MIME type is not a downloadable attachment and is never
// returned. Results appear in depth-first pre-order (parent before children,
// siblings in given order). A nil or empty part list yields an empty result.
func FindMatchingParts(parts []*gmail.MessagePart, allowedTypes []string) []*gmail.MessagePart {
	var found []*gmail.MessagePart

	for _, part := range parts {
		if part == nil {
			continue
		}
		if ValidateMimeType(part.MimeType, allowedTypes) && part.Body != nil && part.Body.AttachmentId != "" {
			found = append(found, part)
		}
		// Check nested parts (e.g., in multipart messages)
		if len(part.Parts) > 0 {
			found = append(found, FindMatchingParts(part.Parts, allowedTypes)...)
		}
	}

	return found
}

// GetAttachment retrieves the content of an attachment (returns []byte)
func (c *Client) GetAttachment(messageID, attachmentID string) ([]byte, error) {
	if messageID == "" {
		return nil, fmt.Errorf("messageID is required")
	}
	if attachmentID == "" {
		return nil, fmt.Errorf("attachmentID is required")
	}

	attachment, err := c.svc.Messages.Attachments.Get("me", messageID, attachmentID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get attachment %s: %w", attachmentID, err)
	}

	// Check size limit
	if attachment.Size > MaxAttachmentSize {
		return nil, fmt.Errorf("attachment size %d exceeds maximum size %d", attachment.Size, MaxAttachmentSize)
	}

	// Decode base64url-encoded data (Gmail API uses RFC 4648 base64url encoding)
	data, err := base64.URLEncoding.DecodeString(attachment.Data)
	if err != nil {
		// Try with standard base64 if URLEncoding fails
		data, err = base64.StdEncoding.DecodeString(attachment.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode attachment data: %w", err)
		}
	}

	return data, nil
}

// walkParts recursively walks through message parts
func walkParts(part *gmail.MessagePart, fn func(*gmail.MessagePart)) {
	if part == nil {
		return
	}

	fn(part)

	for _, subpart := range part.Parts {
		walkParts(subpart, fn)
	}
}

// SanitizeFilename sanitizes a filename to prevent path traversal attacks
func SanitizeFilename(filename string) string {
	// Remove path separators and other potentially dangerous characters
	filename = strings.ReplaceAll(filename, "/", "_")
	filename = strings.ReplaceAll(filename, "\\", "_")
	filename = strings.ReplaceAll(filename, "..", "_")
	return filename
}

// ValidateMimeType checks if a MIME type is in the allowed list.
// An empty allow-list matches nothing: callers must say what they want.
func ValidateMimeType(mimeType string, allowedTypes []string) bool {
	for _, allowed := range allowedTypes {
		if mimeType == allowed {
			return true
		}
	}
	return false
}
