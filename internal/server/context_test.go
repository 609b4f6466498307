package server

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/oauth2"
)

// stubTokenProvider reports tokens for a fixed set of accounts
type stubTokenProvider struct {
	accounts map[string]bool
}

func (s stubTokenProvider) GetTokenForAccount(ctx context.Context, account string) (*oauth2.Token, error) {
	return nil, errors.New("no token")
}

func (s stubTokenProvider) HasTokenForAccount(account string) bool {
	return s.accounts[account]
}

func TestNewServerContext(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	if sc.Context() == nil {
		t.Error("Context() = nil, want non-nil")
	}
	if sc.IsShutdown() {
		t.Error("IsShutdown() = true for fresh context, want false")
	}
}

func TestSetAndGetGmailClient(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	sc.SetGmailClientForAccount("work", nil)
	// A cached nil entry is still a cache hit
	if got := sc.GmailClientForAccount("work"); got != nil {
		t.Errorf("GmailClientForAccount(work) = %v, want nil", got)
	}
}

func TestTokenLookupsGoThroughProvider(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	sc.tokens = stubTokenProvider{accounts: map[string]bool{"work": true}}

	if !sc.HasTokenForAccount("work") {
		t.Error("HasTokenForAccount(work) = false, want true")
	}
	if sc.HasTokenForAccount("personal") {
		t.Error("HasTokenForAccount(personal) = true, want false")
	}

	// No token for the account means no client, and nothing gets cached
	if got := sc.GmailClientForAccount("personal"); got != nil {
		t.Errorf("GmailClientForAccount(personal) = %v, want nil", got)
	}
	if _, ok := sc.gmailClients["personal"]; ok {
		t.Error("GmailClientForAccount(personal) cached an entry, want none")
	}
}

func TestShutdownIsIdempotent(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	sc.Shutdown()
	sc.Shutdown()

	if !sc.IsShutdown() {
		t.Error("IsShutdown() = false after Shutdown, want true")
	}
	if err := sc.Context().Err(); err == nil {
		t.Error("Context().Err() = nil after Shutdown, want cancelled")
	}
}
