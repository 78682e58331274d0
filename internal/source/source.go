// Package source defines the data-source collaborator contract: anything
// that can supply raw vocabulary records for loading into a session's store.
// Concrete sources live under internal/platform (gsheets, xlsxfile).
package source

import (
	"context"
	"strings"
)

// Record is one raw row from a data source, keyed by column header. Keys are
// normalized (trimmed, lower-cased) so that conversion into a domain.Entry
// is an exact key match.
type Record map[string]string

// Source supplies vocabulary records from an external spreadsheet.
type Source interface {
	// FetchRecords retrieves all records from the source. It may block on
	// network or file I/O and honors ctx cancellation.
	//
	// Returns:
	//   - (records, nil): the source's rows, possibly empty
	//   - (nil, error): an error wrapping ErrCredential or ErrConnection
	//
	// A zero-length result is not an error at this level; the caller
	// decides whether an empty source is acceptable.
	FetchRecords(ctx context.Context) ([]Record, error)
}

// RecordsFromTable converts a header row plus data rows into records.
// Header cells are normalized; ragged data rows are padded with empty
// strings so every record carries exactly the header's keys, matching how
// spreadsheet libraries expose trailing blank cells.
func RecordsFromTable(header []string, rows [][]string) []Record {
	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = strings.ToLower(strings.TrimSpace(h))
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := make(Record, len(keys))
		for i, key := range keys {
			if key == "" {
				continue
			}
			if i < len(row) {
				rec[key] = row[i]
			} else {
				rec[key] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}
