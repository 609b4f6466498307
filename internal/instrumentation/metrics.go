package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys - using constants for consistency
const (
	attrResult = "result"
	attrReason = "reason"
	attrStatus = "status"
	attrTool   = "tool"
)

// Result values for the messages_processed counter.
const (
	ResultEmitted = "emitted"
	ResultDropped = "dropped"
)

// Metrics provides methods for recording pipeline observability metrics.
type Metrics struct {
	messagesProcessedTotal metric.Int64Counter
	recordsEmittedTotal    metric.Int64Counter
	attachmentBytesTotal   metric.Int64Counter

	// MCP tool metrics (serve mode)
	toolInvocationsTotal metric.Int64Counter
	toolDuration         metric.Float64Histogram
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.messagesProcessedTotal, err = meter.Int64Counter(
		"mailsift_messages_processed_total",
		metric.WithDescription("Total number of candidate messages processed"),
		metric.WithUnit("{message}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mailsift_messages_processed_total counter: %w", err)
	}

	m.recordsEmittedTotal, err = meter.Int64Counter(
		"mailsift_records_emitted_total",
		metric.WithDescription("Total number of output records pushed to the sink"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mailsift_records_emitted_total counter: %w", err)
	}

	m.attachmentBytesTotal, err = meter.Int64Counter(
		"mailsift_attachment_bytes_total",
		metric.WithDescription("Total decoded attachment bytes fetched"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mailsift_attachment_bytes_total counter: %w", err)
	}

	m.toolInvocationsTotal, err = meter.Int64Counter(
		"mcp_tool_invocations_total",
		metric.WithDescription("Total number of MCP tool invocations"),
		metric.WithUnit("{invocation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_invocations_total counter: %w", err)
	}

	m.toolDuration, err = meter.Float64Histogram(
		"mcp_tool_duration_seconds",
		metric.WithDescription("MCP tool execution duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_duration_seconds histogram: %w", err)
	}

	return m, nil
}

// RecordMessageEmitted records a processed message that produced an output record.
func (m *Metrics) RecordMessageEmitted(ctx context.Context) {
	if m == nil || m.messagesProcessedTotal == nil || m.recordsEmittedTotal == nil {
		return // Instrumentation not initialized
	}

	m.messagesProcessedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrResult, ResultEmitted),
	))
	m.recordsEmittedTotal.Add(ctx, 1)
}

// RecordMessageDropped records a processed message that produced no record.
// The reason is the drop reason reported by the message processor.
func (m *Metrics) RecordMessageDropped(ctx context.Context, reason string) {
	if m == nil || m.messagesProcessedTotal == nil {
		return // Instrumentation not initialized
	}

	m.messagesProcessedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrResult, ResultDropped),
		attribute.String(attrReason, reason),
	))
}

// RecordAttachmentBytes records the decoded size of a fetched attachment.
func (m *Metrics) RecordAttachmentBytes(ctx context.Context, n int64) {
	if m == nil || m.attachmentBytesTotal == nil {
		return // Instrumentation not initialized
	}

	m.attachmentBytesTotal.Add(ctx, n)
}

// RecordToolInvocation records an MCP tool invocation with tool name, status, and duration.
func (m *Metrics) RecordToolInvocation(ctx context.Context, toolName, status string, duration time.Duration) {
	if m == nil || m.toolInvocationsTotal == nil || m.toolDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrTool, toolName),
		attribute.String(attrStatus, status),
	}

	m.toolInvocationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.toolDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}
