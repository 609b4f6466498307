// Package logging provides structured logging utilities for the mailsift application.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "pipeline.run")
//	logger.Info("message processed",
//	    logging.MessageID(id),
//	    logging.Status(logging.StatusSuccess))
package logging
