package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Range is a parsed A1 reference. Coordinates are 1-based and inclusive;
// a zero Row2 or Col2 leaves that side open (e.g. "A:E").
type Range struct {
	Sheet string
	Col1  int
	Row1  int
	Col2  int
	Row2  int
}

// ParseRange parses references such as 'Sheet 1'!$A$7:$BT$39, 202509!A:E or A2:D.
func ParseRange(ref string) (Range, error) {
	var r Range
	ref = strings.TrimSpace(ref)

	// Split by the last ! to separate sheet name and range
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet := ref[:idx]
		if len(sheet) >= 2 && strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") {
			sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
		}
		r.Sheet = sheet
		ref = ref[idx+1:]
	}

	ref = strings.ReplaceAll(ref, "$", "")
	if ref == "" {
		return Range{}, fmt.Errorf("%w: missing cells in %q", ErrInvalidRange, ref)
	}

	start, end, found := strings.Cut(ref, ":")
	var err error
	r.Col1, r.Row1, err = parseEndpoint(start)
	if err != nil {
		return Range{}, err
	}
	if !found {
		// Single cell
		r.Col2, r.Row2 = r.Col1, r.Row1
		if r.Col1 == 0 || r.Row1 == 0 {
			return Range{}, fmt.Errorf("%w: %q is not a cell", ErrInvalidRange, start)
		}
		return r, nil
	}

	r.Col2, r.Row2, err = parseEndpoint(end)
	if err != nil {
		return Range{}, err
	}
	if r.Col1 == 0 {
		r.Col1 = 1
	}
	if r.Row1 == 0 {
		r.Row1 = 1
	}
	if (r.Col2 != 0 && r.Col2 < r.Col1) || (r.Row2 != 0 && r.Row2 < r.Row1) {
		return Range{}, fmt.Errorf("%w: %q is reversed", ErrInvalidRange, ref)
	}
	return r, nil
}

// parseEndpoint splits "BT39", "BT" or "39" into column and row numbers,
// using zero for a missing part.
func parseEndpoint(s string) (col, row int, err error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	letters, digits := s[:i], s[i:]
	if letters == "" && digits == "" {
		return 0, 0, fmt.Errorf("%w: empty endpoint", ErrInvalidRange)
	}

	if letters != "" {
		col, err = excelize.ColumnNameToNumber(letters)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
	}
	if digits != "" {
		row, err = strconv.Atoi(digits)
		if err != nil || row < 1 {
			return 0, 0, fmt.Errorf("%w: bad row in %q", ErrInvalidRange, s)
		}
	}
	return col, row, nil
}

// Slice cuts the range out of rows read from the top-left of a sheet.
// Rows and cells past the sheet's data are simply absent, and trailing empty
// rows are dropped the way the Sheets API drops them.
func (r Range) Slice(rows [][]string) [][]string {
	var out [][]string
	for rowNum := r.Row1; rowNum <= len(rows) && (r.Row2 == 0 || rowNum <= r.Row2); rowNum++ {
		row := rows[rowNum-1]
		var cells []string
		for colNum := r.Col1; colNum <= len(row) && (r.Col2 == 0 || colNum <= r.Col2); colNum++ {
			cells = append(cells, row[colNum-1])
		}
		out = append(out, trimTrailingEmpty(cells))
	}

	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out
}

func trimTrailingEmpty(cells []string) []string {
	n := len(cells)
	for n > 0 && cells[n-1] == "" {
		n--
	}
	if n == 0 {
		return nil
	}
	return cells[:n]
}

// String formats the range back to A1 notation.
func (r Range) String() string {
	endpoint := func(col, row int) string {
		var s string
		if col > 0 {
			s, _ = excelize.ColumnNumberToName(col)
		}
		if row > 0 {
			s += strconv.Itoa(row)
		}
		return s
	}
	cells := endpoint(r.Col1, r.Row1) + ":" + endpoint(r.Col2, r.Row2)
	if r.Sheet == "" {
		return cells
	}
	return r.Sheet + "!" + cells
}
