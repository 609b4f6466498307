package extract_tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/mailsift/internal/gmail"
	"github.com/teemow/mailsift/internal/instrumentation"
	"github.com/teemow/mailsift/internal/server"
)

const (
	defaultMaxResults = 50
	maxMaxResults     = 500
)

// RegisterExtractTools registers the search and extraction tools with the
// MCP server.
func RegisterExtractTools(s *mcpserver.MCPServer, sc *server.ServerContext, metrics *instrumentation.Metrics) error {
	searchTool := mcp.NewTool("gmail_search_messages",
		mcp.WithDescription("Search Gmail messages and return their IDs"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Gmail search query (e.g., 'has:attachment from:billing@example.com')"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of message IDs to return (default: 50, max: 500)"),
		),
	)

	s.AddTool(searchTool, instrumented("gmail_search_messages", metrics,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearchMessages(ctx, request, sc)
		}))

	listAttachmentsTool := mcp.NewTool("gmail_list_attachments",
		mcp.WithDescription("List all attachments in a Gmail message"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("messageId",
			mcp.Required(),
			mcp.Description("The ID of the Gmail message"),
		),
	)

	s.AddTool(listAttachmentsTool, instrumented("gmail_list_attachments", metrics,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListAttachments(ctx, request, sc)
		}))

	extractTool := mcp.NewTool("gmail_extract_attachments",
		mcp.WithDescription("Search Gmail messages and extract text from the first attachment of each that matches the MIME allow-list. PDF attachments are converted to plain text; other types yield a size placeholder."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Gmail search query selecting candidate messages"),
		),
		mcp.WithString("mimeTypes",
			mcp.Description("Comma-separated MIME allow-list (default: 'application/pdf')"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of messages to process (default: 50, max: 500)"),
		),
	)

	s.AddTool(extractTool, instrumented("gmail_extract_attachments", metrics,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleExtractAttachments(ctx, request, sc)
		}))

	return nil
}

// instrumented wraps a tool handler with an invocation counter and duration
// histogram. Handler errors returned in-band count as errors too.
func instrumented(name string, metrics *instrumentation.Metrics, h mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		result, err := h(ctx, request)

		status := "success"
		if err != nil || (result != nil && result.IsError) {
			status = "error"
		}
		metrics.RecordToolInvocation(ctx, name, status, time.Since(start))

		return result, err
	}
}

func getAccountFromArgs(args map[string]interface{}) string {
	account := "default"
	if accountVal, ok := args["account"].(string); ok && accountVal != "" {
		account = accountVal
	}
	return account
}

// maxResultsFromArgs reads the maxResults argument, applying the default and
// the upper bound. JSON numbers arrive as float64.
func maxResultsFromArgs(args map[string]interface{}) int64 {
	maxResults := int64(defaultMaxResults)
	if v, ok := args["maxResults"].(float64); ok && v > 0 {
		maxResults = int64(v)
	}
	if maxResults > maxMaxResults {
		maxResults = maxMaxResults
	}
	return maxResults
}

// getGmailClient resolves a Gmail client for the account, returning a tool
// error result with authorization instructions when no token exists.
func getGmailClient(ctx context.Context, sc *server.ServerContext, account string) (*gmail.Client, *mcp.CallToolResult) {
	client := sc.GmailClientForAccount(account)
	if client != nil {
		return client, nil
	}

	if !sc.HasTokenForAccount(account) {
		authURL := gmail.GetAuthURLForAccount(account)
		errorMsg := fmt.Sprintf(`Gmail OAuth token not found. To authorize access:

1. Visit this URL in your browser:
   %s

2. Sign in with your Google account
3. Grant read-only access to Gmail
4. Copy the authorization code

5. Call the google_save_auth_code tool with the code to complete authentication.

Note: You only need to authorize once. The tokens will be automatically refreshed.`, authURL)
		return nil, mcp.NewToolResultError(errorMsg)
	}

	client, err := gmail.NewClientForAccount(ctx, account)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("Failed to create Gmail client: %v", err))
	}
	sc.SetGmailClientForAccount(account, client)
	return client, nil
}
