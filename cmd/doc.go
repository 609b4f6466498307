// Package cmd implements the mailsift command line interface.
//
// The default command is extract, which searches a Gmail mailbox and streams
// attachment text records to a sink. The auth command handles the OAuth
// consent flow, and serve runs the same extraction pipeline as an MCP server
// over stdio.
package cmd
