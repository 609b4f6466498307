// Package sink provides output destinations for extraction records.
//
// Every sink implements pipeline.Sink. Records are written one at a time, in
// the order the driver emits them, so output ordering always matches message
// ordering.
package sink
