package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// WorkbookReader serves spreadsheets from local .xlsx exports, one file per
// spreadsheet ID named <dir>/<spreadsheetID>.xlsx.
type WorkbookReader struct {
	dir    string
	logger *slog.Logger
}

// NewWorkbookReader creates a reader over dir.
func NewWorkbookReader(dir string, logger *slog.Logger) *WorkbookReader {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookReader{
		dir:    dir,
		logger: logger.With(slog.String("component", "workbook_reader")),
	}
}

// Path returns the workbook file backing spreadsheetID.
func (r *WorkbookReader) Path(spreadsheetID string) string {
	return filepath.Join(r.dir, spreadsheetID+".xlsx")
}

// Values implements ValueReader. A range without a sheet name reads the first sheet.
func (r *WorkbookReader) Values(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rng, err := ParseRange(readRange)
	if err != nil {
		return nil, err
	}

	path := r.Path(spreadsheetID)
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrWorkbookNotFound, path)
		}
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := rng.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheet, path, err)
	}

	values := rng.Slice(rows)
	r.logger.DebugContext(ctx, "workbook range read",
		slog.String("spreadsheet_id", spreadsheetID),
		slog.String("range", readRange),
		slog.Int("rows", len(values)))
	return Normalize(values), nil
}
