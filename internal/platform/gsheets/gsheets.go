// Package gsheets implements the source.Source contract against a Google
// Sheets worksheet, authenticated with a service-account credentials file.
package gsheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/vocadeck/vocadeck-api/internal/config"
	"github.com/vocadeck/vocadeck-api/internal/source"
)

// Verify interface compliance at compile time
var _ source.Source = (*Source)(nil)

// Source reads vocabulary records from one spreadsheet range.
type Source struct {
	logger        *slog.Logger
	svc           *sheets.Service
	spreadsheetID string
	readRange     string
}

// New creates a Google Sheets source. The service-account credentials are
// consumed once, here, before any fetch; a missing or rejected credentials
// file surfaces as source.ErrCredential.
func New(ctx context.Context, logger *slog.Logger, cfg config.SourceConfig) (*Source, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("%w: spreadsheet ID cannot be empty", source.ErrCredential)
	}
	if cfg.CredentialsFile == "" {
		return nil, fmt.Errorf("%w: credentials file cannot be empty", source.ErrCredential)
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", source.ErrCredential, err)
	}

	readRange := cfg.ReadRange
	if readRange == "" {
		readRange = defaultReadRange
	}

	return &Source{
		logger:        logger.With(slog.String("component", "gsheets_source")),
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		readRange:     readRange,
	}, nil
}

// defaultReadRange covers the six entry columns of the first worksheet.
const defaultReadRange = "A:F"

// FetchRecords implements source.Source.FetchRecords. The first row of the
// range is treated as the header row; every following row becomes one
// record keyed by those headers.
func (s *Source) FetchRecords(ctx context.Context) ([]source.Record, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classifyFetchError(err)
	}

	if len(resp.Values) < 2 {
		// Header only, or nothing at all: no records.
		s.logger.Debug("sheet range contained no data rows",
			slog.String("spreadsheet_id", s.spreadsheetID),
			slog.String("range", s.readRange))
		return nil, nil
	}

	header := stringRow(resp.Values[0])
	rows := make([][]string, 0, len(resp.Values)-1)
	for _, row := range resp.Values[1:] {
		rows = append(rows, stringRow(row))
	}

	records := source.RecordsFromTable(header, rows)
	s.logger.Debug("fetched records from sheet",
		slog.String("spreadsheet_id", s.spreadsheetID),
		slog.Int("count", len(records)))
	return records, nil
}

// classifyFetchError maps transport failures onto the source error
// taxonomy: authorization rejections are credential errors, everything
// else is a connection error.
func classifyFetchError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", source.ErrCredential, err)
		}
	}
	return fmt.Errorf("%w: %v", source.ErrConnection, err)
}

// stringRow flattens one row of sheet cells into strings. The Sheets API
// returns formatted values as interface{}; empty cells come back nil.
func stringRow(row []interface{}) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		if cell == nil {
			continue
		}
		if s, ok := cell.(string); ok {
			out[i] = s
			continue
		}
		out[i] = fmt.Sprint(cell)
	}
	return out
}
