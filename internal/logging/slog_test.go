package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestWithOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	WithOperation(logger, "extract").Info("starting")
	if !strings.Contains(buf.String(), "operation=extract") {
		t.Errorf("log output %q missing operation attribute", buf.String())
	}
}

func TestWithAccount(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	WithAccount(logger, "work").Info("starting")
	if !strings.Contains(buf.String(), "account=work") {
		t.Errorf("log output %q missing account attribute", buf.String())
	}
}

func TestMessageIDAttr(t *testing.T) {
	attr := MessageID("msg-123")
	if attr.Key != KeyMessageID {
		t.Errorf("MessageID key = %q, want %q", attr.Key, KeyMessageID)
	}
	if attr.Value.String() != "msg-123" {
		t.Errorf("MessageID value = %q, want %q", attr.Value.String(), "msg-123")
	}
}

func TestReasonAttr(t *testing.T) {
	attr := Reason("no_matching_attachment")
	if attr.Key != KeyReason {
		t.Errorf("Reason key = %q, want %q", attr.Key, KeyReason)
	}
}

func TestErr(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantKey string
	}{
		{
			name:    "non-nil error",
			err:     errors.New("something failed"),
			wantKey: KeyError,
		},
		{
			name:    "nil error returns empty group",
			err:     nil,
			wantKey: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := Err(tt.err)
			if attr.Key != tt.wantKey {
				t.Errorf("Err key = %q, want %q", attr.Key, tt.wantKey)
			}
			if tt.err != nil && attr.Value.String() != tt.err.Error() {
				t.Errorf("Err value = %q, want %q", attr.Value.String(), tt.err.Error())
			}
		})
	}
}
