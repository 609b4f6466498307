package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/teemow/mailsift/internal/gmail"
	"github.com/teemow/mailsift/internal/google"
)

// ServerContext holds shared state for the MCP server: a lazily populated
// cache of Gmail clients keyed by account name. Token lookups go through a
// google.TokenProvider so tests can swap out the on-disk cache.
type ServerContext struct {
	ctx          context.Context
	cancel       context.CancelFunc
	tokens       google.TokenProvider
	gmailClients map[string]*gmail.Client
	mu           sync.RWMutex
	shutdown     bool
}

// NewServerContext creates a new server context
func NewServerContext(ctx context.Context) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	tokens := google.NewFileTokenProvider()
	gmailClients := make(map[string]*gmail.Client)

	// Try to create the default client eagerly, but don't fail if the token
	// is missing. Clients are lazily initialized on first use.
	if tokens.HasTokenForAccount("default") {
		client, err := gmail.NewClient(shutdownCtx)
		if err != nil {
			fmt.Printf("Warning: failed to create Gmail client for default account: %v\n", err)
		} else {
			gmailClients["default"] = client
		}
	}

	return &ServerContext{
		ctx:          shutdownCtx,
		cancel:       cancel,
		tokens:       tokens,
		gmailClients: gmailClients,
	}, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// HasTokenForAccount reports whether an OAuth token is available for the
// account, via the context's token provider.
func (sc *ServerContext) HasTokenForAccount(account string) bool {
	return sc.tokens.HasTokenForAccount(account)
}

// GmailClientForAccount returns the Gmail client for a specific account.
// Creates and caches the client if it doesn't exist yet.
// Returns nil if the account has no token.
func (sc *ServerContext) GmailClientForAccount(account string) *gmail.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if client, ok := sc.gmailClients[account]; ok {
		return client
	}

	if !sc.tokens.HasTokenForAccount(account) {
		return nil
	}

	client, err := gmail.NewClientForAccount(sc.ctx, account)
	if err != nil {
		fmt.Printf("Warning: failed to create Gmail client for account %s: %v\n", account, err)
		return nil
	}

	sc.gmailClients[account] = client
	return client
}

// GmailClient returns the Gmail client for the default account
func (sc *ServerContext) GmailClient() *gmail.Client {
	return sc.GmailClientForAccount("default")
}

// SetGmailClientForAccount sets the Gmail client for a specific account
func (sc *ServerContext) SetGmailClientForAccount(account string, client *gmail.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.gmailClients[account] = client
}

// Shutdown cancels the server context and releases cached clients
func (sc *ServerContext) Shutdown() {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return
	}
	sc.shutdown = true
	sc.cancel()
	sc.gmailClients = make(map[string]*gmail.Client)
}

// IsShutdown reports whether Shutdown has been called
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}
