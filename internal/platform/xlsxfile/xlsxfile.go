// Package xlsxfile implements the source.Source contract against a local
// .xlsx workbook, for offline use without a Google Sheets connection.
package xlsxfile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/vocadeck/vocadeck-api/internal/config"
	"github.com/vocadeck/vocadeck-api/internal/source"
)

// Verify interface compliance at compile time
var _ source.Source = (*Source)(nil)

// Source reads vocabulary records from one worksheet of a local workbook.
type Source struct {
	logger    *slog.Logger
	path      string
	worksheet string
}

// New creates a workbook-backed source. The file is opened on every fetch,
// not here, so the workbook may be edited between loads.
func New(logger *slog.Logger, cfg config.SourceConfig) (*Source, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.WorkbookPath == "" {
		return nil, fmt.Errorf("%w: workbook path cannot be empty", source.ErrConnection)
	}

	return &Source{
		logger:    logger.With(slog.String("component", "xlsxfile_source")),
		path:      cfg.WorkbookPath,
		worksheet: cfg.Worksheet,
	}, nil
}

// FetchRecords implements source.Source.FetchRecords. The first worksheet
// row is the header; the rest become records keyed by those headers.
func (s *Source) FetchRecords(ctx context.Context) ([]source.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", source.ErrConnection, err)
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook %s: %v", source.ErrConnection, s.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("failed to close workbook", slog.String("error", cerr.Error()))
		}
	}()

	worksheet := s.worksheet
	if worksheet == "" {
		worksheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(worksheet)
	if err != nil {
		return nil, fmt.Errorf("%w: read worksheet %q: %v", source.ErrConnection, worksheet, err)
	}

	if len(rows) < 2 {
		s.logger.Debug("worksheet contained no data rows",
			slog.String("path", s.path),
			slog.String("worksheet", worksheet))
		return nil, nil
	}

	records := source.RecordsFromTable(rows[0], rows[1:])
	s.logger.Debug("fetched records from workbook",
		slog.String("path", s.path),
		slog.Int("count", len(records)))
	return records, nil
}
