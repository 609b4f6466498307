package sink

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/teemow/mailsift/internal/pipeline"
)

// JSONL appends one JSON object per line to a writer. Records are flushed as
// they arrive, so a partial run still leaves valid lines behind.
type JSONL struct {
	enc    *json.Encoder
	closer io.Closer
}

// NewJSONL wraps an existing writer, typically os.Stdout.
func NewJSONL(w io.Writer) *JSONL {
	return &JSONL{enc: json.NewEncoder(w)}
}

// OpenJSONL creates or truncates a JSONL file at path.
func OpenJSONL(path string) (*JSONL, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &JSONL{enc: json.NewEncoder(f), closer: f}, nil
}

// Push writes one record as a single JSON line.
func (s *JSONL) Push(rec *pipeline.Record) error {
	if err := s.enc.Encode(rec); err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	return nil
}

// Close closes the underlying file if the sink owns one.
func (s *JSONL) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
