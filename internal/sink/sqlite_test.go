package sink

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLitePushAndCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Push(sampleRecord("m1")))
	require.NoError(t, s.Push(sampleRecord("m2")))

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSQLiteStoresRecordFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Push(sampleRecord("m1")))

	var messageID, subject, mimes, content string
	err = s.db.QueryRow(`
		SELECT message_id, subject, target_mimes, content_text FROM records WHERE message_id = ?
	`, "m1").Scan(&messageID, &subject, &mimes, &content)
	require.NoError(t, err)
	assert.Equal(t, "m1", messageID)
	assert.Equal(t, "Rate Confirmation for order #42", subject)
	assert.Equal(t, "application/pdf", mimes)
	assert.Equal(t, "extracted text", content)
}

func TestOpenSQLiteReopensExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Push(sampleRecord("m1")))
	require.NoError(t, s.Close())

	s2, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s2.Close()

	n, err := s2.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
