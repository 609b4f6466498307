package gmail

import (
	gmail "google.golang.org/api/gmail/v1"
)

// Sentinel values used when a message lacks the corresponding header.
const (
	NoSubject = "No Subject"
	NoDate    = "No Date"
)

// HeaderValue extracts a single header value from a Gmail message
func HeaderValue(m *gmail.Message, header string) string {
	return Headers(m)[header]
}

// Headers builds a name-to-value map from a message's flat header list.
// Later duplicates win, matching the Gmail API's ordering.
func Headers(m *gmail.Message) map[string]string {
	headers := make(map[string]string)
	if m == nil || m.Payload == nil {
		return headers
	}
	for _, h := range m.Payload.Headers {
		headers[h.Name] = h.Value
	}
	return headers
}

// Subject returns the message subject, or the NoSubject sentinel when absent
func Subject(m *gmail.Message) string {
	if s := HeaderValue(m, "Subject"); s != "" {
		return s
	}
	return NoSubject
}

// Date returns the message date header, or the NoDate sentinel when absent
func Date(m *gmail.Message) string {
	if d := HeaderValue(m, "Date"); d != "" {
		return d
	}
	return NoDate
}
