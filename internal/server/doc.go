// Package server holds shared state for the MCP serve mode.
//
// ServerContext caches Gmail clients per account so that repeated tool
// invocations reuse authenticated connections instead of rebuilding them on
// every call.
package server
