package xlsxfile

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vocadeck/vocadeck-api/internal/config"
	"github.com/vocadeck/vocadeck-api/internal/source"
)

// writeWorkbook creates a temp workbook with the given rows on the first
// worksheet and returns its path.
func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "vocab.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestFetchRecords(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, [][]interface{}{
		{"word", "explanation", "related_words", "pos", "usage", "sentence"},
		{"abate", "減少；減輕", "diminish, subside", "v.", "note", "The storm began to abate."},
		{"admonish", "告誡", "warn, caution", "v.", "note", "The teacher admonished the students."},
	})

	src, err := New(slog.Default(), config.SourceConfig{WorkbookPath: path})
	require.NoError(t, err)

	records, err := src.FetchRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "abate", records[0]["word"])
	assert.Equal(t, "減少；減輕", records[0]["explanation"])
	assert.Equal(t, "admonish", records[1]["word"])
}

func TestFetchRecordsHeaderOnly(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, [][]interface{}{
		{"word", "explanation", "related_words", "pos", "usage", "sentence"},
	})

	src, err := New(slog.Default(), config.SourceConfig{WorkbookPath: path})
	require.NoError(t, err)

	records, err := src.FetchRecords(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFetchRecordsMissingFile(t *testing.T) {
	t.Parallel()

	src, err := New(slog.Default(), config.SourceConfig{
		WorkbookPath: filepath.Join(t.TempDir(), "does-not-exist.xlsx"),
	})
	require.NoError(t, err)

	_, err = src.FetchRecords(context.Background())
	assert.ErrorIs(t, err, source.ErrConnection)
}

func TestFetchRecordsMissingWorksheet(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, [][]interface{}{
		{"word", "explanation", "related_words", "pos", "usage", "sentence"},
		{"abate", "減少", "", "v.", "", ""},
	})

	src, err := New(slog.Default(), config.SourceConfig{
		WorkbookPath: path,
		Worksheet:    "工作表1",
	})
	require.NoError(t, err)

	_, err = src.FetchRecords(context.Background())
	assert.ErrorIs(t, err, source.ErrConnection)
}

func TestNewRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := New(slog.Default(), config.SourceConfig{})
	assert.Error(t, err)
}
