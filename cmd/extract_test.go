package cmd

import (
	"testing"
)

func TestOpenSinkRejectsUnknownKind(t *testing.T) {
	if _, err := openSink("csv", "", ""); err == nil {
		t.Error("openSink(csv) error = nil, want error")
	}
}

func TestOpenSinkJSONLDefaultsToStdout(t *testing.T) {
	s, err := openSink("jsonl", "", "")
	if err != nil {
		t.Fatalf("openSink(jsonl) error = %v", err)
	}
	if s == nil {
		t.Fatal("openSink(jsonl) = nil, want sink")
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestOpenSinkSQLite(t *testing.T) {
	s, err := openSink("sqlite", "", t.TempDir()+"/records.db")
	if err != nil {
		t.Fatalf("openSink(sqlite) error = %v", err)
	}
	defer s.Close()
	if s == nil {
		t.Fatal("openSink(sqlite) = nil, want sink")
	}
}

func TestExtractCommandFlags(t *testing.T) {
	cmd := newExtractCmd()

	if got := cmd.Flags().Lookup("query").DefValue; got != defaultQuery {
		t.Errorf("query default = %v, want %v", got, defaultQuery)
	}
	if got := cmd.Flags().Lookup("sink").DefValue; got != "jsonl" {
		t.Errorf("sink default = %v, want jsonl", got)
	}
	if got := cmd.Flags().Lookup("max-results").DefValue; got != "500" {
		t.Errorf("max-results default = %v, want 500", got)
	}
	if got := cmd.Flags().Lookup("mime-types").DefValue; got != "[application/pdf]" {
		t.Errorf("mime-types default = %v, want [application/pdf]", got)
	}
}
