package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/teemow/mailsift/internal/instrumentation"
	"github.com/teemow/mailsift/internal/logging"
)

// MessageProcessor is what the driver runs per candidate message.
// *Processor satisfies it; tests provide fakes.
type MessageProcessor interface {
	Process(messageID string) (*Record, DropReason)
}

// Driver iterates candidate messages strictly in order, one at a time, and
// streams each emitted record to the sink before moving on. A dropped message
// is logged and counted, never fatal; a sink failure is fatal because output
// is no longer trustworthy.
type Driver struct {
	Processor MessageProcessor
	Sink      Sink
	Metrics   *instrumentation.Metrics
	Logger    *slog.Logger
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

// Run processes the candidate list and returns the number of emitted records.
// An empty candidate list is not an error; the run completes with zero
// records. The context is only consulted between messages, so message N+1
// never starts before message N completes.
func (d *Driver) Run(ctx context.Context, messageIDs []string) (int, error) {
	logger := d.logger()
	emitted := 0

	for i, messageID := range messageIDs {
		if err := ctx.Err(); err != nil {
			return emitted, fmt.Errorf("run cancelled after %d of %d messages: %w", i, len(messageIDs), err)
		}

		logger.Info("processing message",
			logging.MessageID(messageID),
			slog.Int("index", i+1),
			slog.Int("total", len(messageIDs)))

		rec, reason := d.Processor.Process(messageID)
		if rec == nil {
			d.Metrics.RecordMessageDropped(ctx, string(reason))
			logger.Info("message skipped",
				logging.MessageID(messageID),
				logging.Reason(string(reason)))
			continue
		}

		if err := d.Sink.Push(rec); err != nil {
			return emitted, fmt.Errorf("failed to push record for message %s: %w", rec.MessageID, err)
		}
		emitted++
		d.Metrics.RecordMessageEmitted(ctx)
		d.Metrics.RecordAttachmentBytes(ctx, int64(rec.Bytes))

		logger.Info("pushed record",
			logging.MessageID(messageID),
			logging.Status(logging.StatusSuccess))
	}

	return emitted, nil
}
