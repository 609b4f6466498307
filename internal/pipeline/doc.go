// Package pipeline contains the message-to-record extraction pipeline.
//
// The Processor handles one message at a time: fetch the full message, find
// the first attachment matching the MIME allow-list in the part tree, fetch
// and decode its payload, and extract text. The Driver iterates a candidate
// list strictly sequentially and streams emitted records to a Sink.
//
// Failure handling is deliberately asymmetric: anything that goes wrong
// inside a single message becomes a DropReason and the run continues, while
// sink failures and cancellation abort the run. No state is shared across
// messages and no retries are performed.
package pipeline
