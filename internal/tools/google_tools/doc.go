// Package google_tools exposes the OAuth authorization flow as MCP tools so
// an agent can walk a user through granting Gmail access without leaving the
// conversation.
package google_tools
