// Package extract_tools exposes Gmail search and attachment text extraction
// as MCP tools.
//
// The extraction tool runs the same per-message pipeline as the CLI: first
// matching attachment only, per-message failure isolation, and a dropped map
// explaining every message that produced no record.
package extract_tools
