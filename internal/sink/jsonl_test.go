package sink

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/mailsift/internal/pipeline"
)

func sampleRecord(id string) *pipeline.Record {
	return &pipeline.Record{
		MessageID:      id,
		Subject:        "Rate Confirmation for order #42",
		Date:           "Mon, 06 Jan 2025 10:00:00 +0000",
		AttachmentName: "confirmation.pdf",
		QueryUsed:      "has:attachment",
		TargetMimes:    []string{"application/pdf"},
		ContentText:    "extracted text",
		Bytes:          1024,
	}
}

func TestJSONLPushWritesOneLinePerRecord(t *testing.T) {
	var buf bytes.Buffer
	s := NewJSONL(&buf)

	require.NoError(t, s.Push(sampleRecord("m1")))
	require.NoError(t, s.Push(sampleRecord("m2")))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &got))
	assert.Equal(t, "m1", got["messageId"])
	assert.Equal(t, "Rate Confirmation for order #42", got["subject"])
	assert.Equal(t, "confirmation.pdf", got["attachmentName"])
	assert.Equal(t, "has:attachment", got["gmailQueryUsed"])
	assert.Equal(t, "extracted text", got["attachmentContentText"])
}

func TestJSONLOmitsInternalFields(t *testing.T) {
	var buf bytes.Buffer
	s := NewJSONL(&buf)
	require.NoError(t, s.Push(sampleRecord("m1")))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.NotContains(t, got, "Bytes")
	assert.NotContains(t, got, "bytes")
}

func TestOpenJSONLWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "records.jsonl")

	s, err := OpenJSONL(path)
	require.NoError(t, err)
	require.NoError(t, s.Push(sampleRecord("m1")))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"messageId":"m1"`)
}

func TestJSONLCloseWithoutFile(t *testing.T) {
	s := NewJSONL(&bytes.Buffer{})
	assert.NoError(t, s.Close())
}
