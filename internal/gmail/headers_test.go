package gmail

import (
	"testing"

	gmail "google.golang.org/api/gmail/v1"
)

func TestHeaderValue(t *testing.T) {
	msg := &gmail.Message{
		Payload: &gmail.MessagePart{
			Headers: []*gmail.MessagePartHeader{
				{Name: "Subject", Value: "Rate Confirmation for order #42"},
				{Name: "Date", Value: "Mon, 06 Jan 2025 10:00:00 +0000"},
				{Name: "From", Value: "dispatch@scotlynn.com"},
			},
		},
	}

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"existing subject", "Subject", "Rate Confirmation for order #42"},
		{"existing date", "Date", "Mon, 06 Jan 2025 10:00:00 +0000"},
		{"missing header", "X-Missing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HeaderValue(msg, tt.header); got != tt.want {
				t.Errorf("HeaderValue(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestHeaderValueNilPayload(t *testing.T) {
	msg := &gmail.Message{}
	if got := HeaderValue(msg, "Subject"); got != "" {
		t.Errorf("HeaderValue() on nil payload = %q, want empty string", got)
	}
}

func TestSubjectAndDateSentinels(t *testing.T) {
	tests := []struct {
		name        string
		msg         *gmail.Message
		wantSubject string
		wantDate    string
	}{
		{
			name: "both headers present",
			msg: &gmail.Message{
				Payload: &gmail.MessagePart{
					Headers: []*gmail.MessagePartHeader{
						{Name: "Subject", Value: "hello"},
						{Name: "Date", Value: "today"},
					},
				},
			},
			wantSubject: "hello",
			wantDate:    "today",
		},
		{
			name:        "missing headers fall back to sentinels",
			msg:         &gmail.Message{Payload: &gmail.MessagePart{}},
			wantSubject: NoSubject,
			wantDate:    NoDate,
		},
		{
			name:        "nil payload falls back to sentinels",
			msg:         &gmail.Message{},
			wantSubject: NoSubject,
			wantDate:    NoDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Subject(tt.msg); got != tt.wantSubject {
				t.Errorf("Subject() = %q, want %q", got, tt.wantSubject)
			}
			if got := Date(tt.msg); got != tt.wantDate {
				t.Errorf("Date() = %q, want %q", got, tt.wantDate)
			}
		})
	}
}

func TestHeaders(t *testing.T) {
	msg := &gmail.Message{
		Payload: &gmail.MessagePart{
			Headers: []*gmail.MessagePartHeader{
				{Name: "Subject", Value: "first"},
				{Name: "Subject", Value: "second"},
				{Name: "From", Value: "a@example.com"},
			},
		},
	}

	headers := Headers(msg)
	if len(headers) != 2 {
		t.Fatalf("Headers() returned %d entries, want 2", len(headers))
	}
	if headers["Subject"] != "second" {
		t.Errorf("Headers()[Subject] = %q, want %q (later duplicate wins)", headers["Subject"], "second")
	}

	if got := Headers(nil); len(got) != 0 {
		t.Errorf("Headers(nil) returned %d entries, want 0", len(got))
	}
}
