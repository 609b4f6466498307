package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teemow/mailsift/internal/extract"
	"github.com/teemow/mailsift/internal/gmail"
	"github.com/teemow/mailsift/internal/instrumentation"
	"github.com/teemow/mailsift/internal/logging"
	"github.com/teemow/mailsift/internal/pipeline"
	"github.com/teemow/mailsift/internal/sink"
)

const defaultQuery = `subject:"Rate Confirmation for order #" has:attachment from:@scotlynn.com`

func newExtractCmd() *cobra.Command {
	var (
		account    string
		query      string
		mimeTypes  []string
		maxResults int64
		sinkKind   string
		outPath    string
		dbPath     string
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Search Gmail and extract attachment text into JSON records",
		Long: `Search the mailbox with a Gmail query, walk each message's part tree for
attachments matching the MIME allow-list, and extract text from the first
match. Records stream to stdout as JSON lines unless --out or --sink
redirects them.

A message that yields no record (no matching attachment, fetch failure,
unreadable PDF) is skipped and logged; it never aborts the batch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.WithOperation(logging.WithAccount(newLogger(), account), "extract")

			ctx, cancel := signal.NotifyContext(cmd.Context(),
				os.Interrupt, syscall.SIGTERM)
			defer cancel()

			instrConfig := instrumentation.DefaultConfig()
			instrConfig.ServiceVersion = version

			provider, err := instrumentation.NewProvider(ctx, instrConfig)
			if err != nil {
				return fmt.Errorf("failed to create instrumentation provider: %w", err)
			}
			defer func() {
				if err := provider.Shutdown(ctx); err != nil {
					logger.Warn("instrumentation shutdown failed", logging.Err(err))
				}
			}()

			client, err := gmail.NewClientForAccount(ctx, account)
			if err != nil {
				return fmt.Errorf("failed to create Gmail client for account %s: %w", account, err)
			}

			out, err := openSink(sinkKind, outPath, dbPath)
			if err != nil {
				return err
			}
			defer out.Close()

			logger.Info("searching mailbox", logging.Query(query))
			messageIDs, err := client.Search(query, maxResults)
			if err != nil {
				return fmt.Errorf("failed to search messages: %w", err)
			}
			logger.Info("search complete",
				logging.Query(query),
				logging.Status(logging.StatusSuccess))

			driver := &pipeline.Driver{
				Processor: &pipeline.Processor{
					Source:       client,
					AllowedTypes: mimeTypes,
					Query:        query,
					Logger:       logger,
				},
				Sink:    out,
				Metrics: provider.Metrics(),
				Logger:  logger,
			}

			emitted, err := driver.Run(ctx, messageIDs)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "Processed %d message(s), emitted %d record(s)\n",
				len(messageIDs), emitted)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use (default: 'default')")
	cmd.Flags().StringVarP(&query, "query", "q", defaultQuery, "Gmail search query selecting candidate messages")
	cmd.Flags().StringSliceVar(&mimeTypes, "mime-types", []string{extract.MimeTypePDF}, "MIME types of attachments to extract")
	cmd.Flags().Int64Var(&maxResults, "max-results", 500, "Maximum number of messages to process")
	cmd.Flags().StringVar(&sinkKind, "sink", "jsonl", "Output sink: jsonl or sqlite")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "JSONL output file (default: stdout)")
	cmd.Flags().StringVar(&dbPath, "db", "mailsift.db", "SQLite database path (used with --sink sqlite)")

	return cmd
}

// recordSink is a pipeline.Sink that owns a resource to release at exit
type recordSink interface {
	Push(rec *pipeline.Record) error
	Close() error
}

func openSink(kind, outPath, dbPath string) (recordSink, error) {
	switch kind {
	case "jsonl":
		if outPath == "" {
			return sink.NewJSONL(os.Stdout), nil
		}
		return sink.OpenJSONL(outPath)
	case "sqlite":
		return sink.OpenSQLite(dbPath)
	default:
		return nil, fmt.Errorf("unsupported sink type: %s (supported: jsonl, sqlite)", kind)
	}
}
