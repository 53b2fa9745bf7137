package timecollect

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/ukaji3/timecollect-go/pkg/timecollect/models"
	"github.com/ukaji3/timecollect-go/pkg/timecollect/source"
)

// rosterColumns is the number of cells an employee row needs:
// id, name, nickname, team, spreadsheet id.
const rosterColumns = 5

// ParseEmployees reads roster rows [id, name, nickname, team, spreadsheet_id].
// Blank rows are skipped silently; malformed rows are skipped with a warning.
func ParseEmployees(rows [][]string, logger *slog.Logger) []models.Employee {
	if logger == nil {
		logger = slog.Default()
	}

	var employees []models.Employee
	for i, row := range rows {
		if isBlank(row) {
			continue
		}
		if len(row) < rosterColumns {
			logger.Warn("skipping short roster row", slog.Int("row", i+1), slog.Any("cells", row))
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			logger.Warn("skipping roster row with invalid id", slog.Int("row", i+1), slog.Any("cells", row))
			continue
		}
		employees = append(employees, models.Employee{
			ID:            id,
			Name:          row[1],
			Nickname:      row[2],
			Team:          row[3],
			SpreadsheetID: row[4],
		})
	}
	return employees
}

// isBlank reports whether a row holds nothing but empty or blank-filler cells.
func isBlank(row []string) bool {
	for _, cell := range row {
		if c := strings.TrimSpace(cell); c != "" && c != source.BlankCell {
			return false
		}
	}
	return true
}
