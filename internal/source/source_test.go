package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordsFromTable(t *testing.T) {
	t.Parallel()

	header := []string{"Word", " explanation", "related_words", "pos", "usage", "sentence"}
	rows := [][]string{
		{"abate", "減少；減輕", "diminish", "v.", "note", "The storm began to abate."},
	}

	records := RecordsFromTable(header, rows)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "abate", rec["word"], "header keys are normalized")
	assert.Equal(t, "減少；減輕", rec["explanation"])
	assert.Equal(t, "diminish", rec["related_words"])
}

func TestRecordsFromTableRaggedRows(t *testing.T) {
	t.Parallel()

	header := []string{"word", "explanation", "related_words", "pos", "usage", "sentence"}
	rows := [][]string{
		{"abate", "減少"}, // trailing blank cells omitted by the reader
	}

	records := RecordsFromTable(header, rows)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "abate", rec["word"])

	// Padded cells exist with empty values so key-presence checks pass.
	for _, key := range []string{"related_words", "pos", "usage", "sentence"} {
		v, ok := rec[key]
		assert.True(t, ok, "expected key %q to exist", key)
		assert.Empty(t, v)
	}
}

func TestRecordsFromTableEmpty(t *testing.T) {
	t.Parallel()

	records := RecordsFromTable([]string{"word"}, nil)
	assert.Empty(t, records)
}

func TestRecordsFromTableSkipsBlankHeaders(t *testing.T) {
	t.Parallel()

	header := []string{"word", ""}
	rows := [][]string{{"abate", "stray value"}}

	records := RecordsFromTable(header, rows)
	require.Len(t, records, 1)
	assert.Len(t, records[0], 1, "blank header columns carry no key")
}
