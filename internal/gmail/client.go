package gmail

import (
	"context"
	"fmt"

	gmail "google.golang.org/api/gmail/v1"

	"github.com/teemow/mailsift/internal/google"
)

// Client wraps the Gmail Users service
type Client struct {
	svc     *gmail.UsersService
	account string // The account this client is associated with
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// GetAuthURLForAccount returns the OAuth consent URL for the specified account
func GetAuthURLForAccount(account string) string {
	return google.GetAuthURLForAccount(account)
}

// NewClientForAccount creates a new Gmail client with OAuth2 authentication for a specific account.
// The OAuth token must already be cached on disk; run the auth command to create one.
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s: %w. Run 'mailsift auth' to authorize", account, err)
	}

	svc, err := gmail.New(client)
	if err != nil {
		return nil, err
	}

	return &Client{
		svc:     svc.Users,
		account: account,
	}, nil
}

// NewClient creates a new Gmail client with OAuth2 authentication for the default account
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// Search lists message IDs matching the query with pagination.
// It will fetch up to maxResults IDs, making multiple API calls if necessary.
// Candidates are returned in the order the Gmail API supplies them.
func (c *Client) Search(query string, maxResults int64) ([]string, error) {
	var ids []string
	pageToken := ""

	for {
		// Request the remaining number of messages needed
		remaining := maxResults - int64(len(ids))
		if remaining <= 0 {
			break
		}

		// Gmail API has a max page size, typically 100
		pageSize := remaining
		if pageSize > 100 {
			pageSize = 100
		}

		req := c.svc.Messages.List("me").Q(query).MaxResults(pageSize)
		if pageToken != "" {
			req = req.PageToken(pageToken)
		}

		res, err := req.Do()
		if err != nil {
			return nil, fmt.Errorf("gmail search failed for query %q: %w", query, err)
		}

		for _, m := range res.Messages {
			ids = append(ids, m.Id)
		}

		if res.NextPageToken == "" || int64(len(ids)) >= maxResults {
			break
		}

		pageToken = res.NextPageToken
	}

	if int64(len(ids)) > maxResults {
		ids = ids[:maxResults]
	}

	return ids, nil
}

// GetMessage retrieves a full Gmail message
func (c *Client) GetMessage(messageID string) (*gmail.Message, error) {
	msg, err := c.svc.Messages.Get("me", messageID).Format("full").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", messageID, err)
	}
	return msg, nil
}
