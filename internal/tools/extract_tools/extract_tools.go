package extract_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/mailsift/internal/extract"
	"github.com/teemow/mailsift/internal/pipeline"
	"github.com/teemow/mailsift/internal/server"
)

func handleSearchMessages(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	account := getAccountFromArgs(args)
	client, errResult := getGmailClient(ctx, sc, account)
	if errResult != nil {
		return errResult, nil
	}

	messageIDs, err := client.Search(query, maxResultsFromArgs(args))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to search messages: %v", err)), nil
	}

	if len(messageIDs) == 0 {
		return mcp.NewToolResultText("No messages matched the query"), nil
	}

	jsonBytes, err := json.MarshalIndent(messageIDs, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format output: %v", err)), nil
	}

	result := fmt.Sprintf("Found %d message(s):\n%s", len(messageIDs), string(jsonBytes))
	return mcp.NewToolResultText(result), nil
}

func handleListAttachments(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	messageID, ok := args["messageId"].(string)
	if !ok || messageID == "" {
		return mcp.NewToolResultError("messageId is required"), nil
	}

	account := getAccountFromArgs(args)
	client, errResult := getGmailClient(ctx, sc, account)
	if errResult != nil {
		return errResult, nil
	}

	attachments, err := client.ListAttachments(messageID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list attachments: %v", err)), nil
	}

	if len(attachments) == 0 {
		return mcp.NewToolResultText("No attachments found in message"), nil
	}

	jsonBytes, err := json.MarshalIndent(attachments, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format output: %v", err)), nil
	}

	result := fmt.Sprintf("Found %d attachment(s):\n%s", len(attachments), string(jsonBytes))
	return mcp.NewToolResultText(result), nil
}

func handleExtractAttachments(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	mimeTypes := []string{extract.MimeTypePDF}
	if mimeVal, ok := args["mimeTypes"].(string); ok && mimeVal != "" {
		mimeTypes = parseMimeTypes(mimeVal)
	}

	account := getAccountFromArgs(args)
	client, errResult := getGmailClient(ctx, sc, account)
	if errResult != nil {
		return errResult, nil
	}

	messageIDs, err := client.Search(query, maxResultsFromArgs(args))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to search messages: %v", err)), nil
	}

	if len(messageIDs) == 0 {
		return mcp.NewToolResultText("No messages matched the query"), nil
	}

	processor := &pipeline.Processor{
		Source:       client,
		AllowedTypes: mimeTypes,
		Query:        query,
	}

	records := make([]*pipeline.Record, 0, len(messageIDs))
	dropped := make(map[string]string)
	for _, messageID := range messageIDs {
		if err := ctx.Err(); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Extraction cancelled: %v", err)), nil
		}
		rec, reason := processor.Process(messageID)
		if rec == nil {
			dropped[messageID] = string(reason)
			continue
		}
		records = append(records, rec)
	}

	output := struct {
		Records []*pipeline.Record `json:"records"`
		Dropped map[string]string  `json:"dropped,omitempty"`
	}{Records: records, Dropped: dropped}
	if len(dropped) == 0 {
		output.Dropped = nil
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format output: %v", err)), nil
	}

	result := fmt.Sprintf("Extracted %d record(s) from %d message(s):\n%s",
		len(records), len(messageIDs), string(jsonBytes))
	return mcp.NewToolResultText(result), nil
}

// parseMimeTypes splits a comma-separated allow-list, dropping empty entries
func parseMimeTypes(s string) []string {
	var types []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			types = append(types, t)
		}
	}
	if len(types) == 0 {
		return []string{extract.MimeTypePDF}
	}
	return types
}
