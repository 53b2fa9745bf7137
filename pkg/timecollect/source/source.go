// Package source reads raw cell matrices from Google Sheets or local workbooks.
package source

import (
	"context"
	"errors"
)

// BlankCell replaces empty cells so hour columns parse as zero.
const BlankCell = "0.00"

// ErrInvalidRange indicates an A1 range that cannot be parsed.
var ErrInvalidRange = errors.New("invalid A1 range")

// ErrWorkbookNotFound indicates a missing local workbook for a spreadsheet ID.
var ErrWorkbookNotFound = errors.New("workbook not found")

// ValueReader returns the cell values of readRange in a spreadsheet.
// Implementations return Normalize'd matrices.
type ValueReader interface {
	Values(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
}

// Normalize pads every row to the width of the widest row and replaces empty
// cells with BlankCell. The input is not modified.
func Normalize(values [][]string) [][]string {
	if len(values) == 0 {
		return nil
	}

	width := 0
	for _, row := range values {
		width = max(width, len(row))
	}

	out := make([][]string, len(values))
	for i, row := range values {
		padded := make([]string, width)
		for j := range padded {
			if j < len(row) && row[j] != "" {
				padded[j] = row[j]
			} else {
				padded[j] = BlankCell
			}
		}
		out[i] = padded
	}
	return out
}
