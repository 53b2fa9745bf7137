package transform

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/timecollect-go/pkg/timecollect/models"
	"github.com/ukaji3/timecollect-go/pkg/timecollect/schedule"
)

// UnclassifiedWeekType is recorded for dates outside every schedule period.
// Such entries are still emitted so no hours are dropped.
const UnclassifiedWeekType = "None"

// headerRows is the number of leading header rows (project codes, task types).
const headerRows = 2

// Stats counts what a transform kept and skipped.
type Stats struct {
	// DataRows is the number of rows after the two header rows.
	DataRows int
	// InvalidDates counts rows skipped for a missing or impossible date.
	InvalidDates int
	// Unclassified counts emitted entries whose date matched no period.
	Unclassified int
	// UnparseableHours counts cells that were not finite numbers.
	UnparseableHours int
	// ZeroHours counts cells holding exactly zero.
	ZeroHours int
	// OutOfLayout counts non-zero cells past the header or category columns.
	OutOfLayout int
	// Entries is the number of emitted entries.
	Entries int
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.DataRows += o.DataRows
	s.InvalidDates += o.InvalidDates
	s.Unclassified += o.Unclassified
	s.UnparseableHours += o.UnparseableHours
	s.ZeroHours += o.ZeroHours
	s.OutOfLayout += o.OutOfLayout
	s.Entries += o.Entries
}

// Transformer converts raw timesheet matrices into entries. The schedule,
// client index and layout are shared read-only, so one Transformer may serve
// concurrent calls.
type Transformer struct {
	periods []models.WeekPeriod
	clients *ClientIndex
	layout  Layout
	labels  []string
}

// New creates a Transformer.
func New(periods []models.WeekPeriod, clients *ClientIndex, layout Layout) *Transformer {
	return &Transformer{
		periods: periods,
		clients: clients,
		layout:  layout,
		labels:  layout.Labels(),
	}
}

// Layout returns the layout the transformer was built with.
func (t *Transformer) Layout() Layout {
	return t.layout
}

// Transform returns the entries of raw for employee.
func (t *Transformer) Transform(raw [][]string, employee models.Employee) []models.TimesheetEntry {
	entries, _ := t.TransformStats(raw, employee)
	return entries
}

// TransformStats is Transform that also reports skip counts. raw must hold the
// two header rows followed by at least one data row, otherwise no entries are
// returned. raw itself is left untouched.
func (t *Transformer) TransformStats(raw [][]string, employee models.Employee) ([]models.TimesheetEntry, Stats) {
	var stats Stats
	if len(raw) < headerRows+1 {
		return nil, stats
	}

	matrix := Prune(raw, t.layout.DropColumns)
	codes, tasks := t.reshapeHeaders(matrix[0], matrix[1])

	var entries []models.TimesheetEntry
	for i, row := range matrix[headerRows:] {
		rowNumber := i + 1
		stats.DataRows++

		year, month, day, ok := parseDate(row)
		if !ok {
			stats.InvalidDates++
			continue
		}
		weekType, found, err := schedule.Resolve(t.periods, year, month, day)
		if err != nil {
			stats.InvalidDates++
			continue
		}
		if !found {
			weekType = UnclassifiedWeekType
		}

		for col := t.layout.DataStartColumn; col < len(row); col++ {
			hours, ok := parseHours(row[col])
			if !ok {
				stats.UnparseableHours++
				continue
			}
			if hours == 0 {
				stats.ZeroHours++
				continue
			}
			if col >= len(codes) || col >= len(tasks) || col >= len(t.labels) {
				stats.OutOfLayout++
				continue
			}

			if !found {
				stats.Unclassified++
			}
			code := codes[col]
			entries = append(entries, models.TimesheetEntry{
				Client:       t.clients.Lookup(code),
				RowNumber:    rowNumber,
				Year:         year,
				Month:        month,
				Day:          day,
				WeekType:     weekType,
				EmployeeName: employee.Nickname,
				ProjectCode:  code,
				TaskType:     tasks[col],
				WorkType:     t.labels[col],
				EmployeeTeam: employee.Team,
				WorkedHours:  hours,
			})
		}
	}

	stats.Entries = len(entries)
	return entries, stats
}

// reshapeHeaders returns the project code and task type header rows with the
// layout's header fix-ups applied.
func (t *Transformer) reshapeHeaders(codeRow, taskRow []string) (codes, tasks []string) {
	codes = append([]string(nil), codeRow...)

	// The leading columns label task types in the code row; the task row
	// takes them over, keeping whatever it has past that width.
	mirror := min(t.layout.MirrorWidth, len(codes))
	keep := min(t.layout.MirrorWidth, len(taskRow))
	tasks = make([]string, 0, mirror+len(taskRow)-keep)
	tasks = append(tasks, codes[:mirror]...)
	tasks = append(tasks, taskRow[keep:]...)

	// Codes are only declared at the end of each block; spread them over the
	// columns that follow.
	for i := 0; i < t.layout.FanOutWidth; i++ {
		for _, j := range t.layout.FanOutOffsets {
			if j-1 >= 0 && j-1 < len(codes) && i+j < len(codes) {
				codes[i+j] = codes[j-1]
			}
		}
	}
	return codes, tasks
}

// parseDate reads year, month and day from the first three cells.
func parseDate(row []string) (year, month, day int, ok bool) {
	if len(row) < 3 {
		return 0, 0, 0, false
	}
	var parts [3]int
	for i := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(row[i]))
		if err != nil {
			return 0, 0, 0, false
		}
		parts[i] = n
	}
	return parts[0], parts[1], parts[2], true
}

// parseHours parses a finite hour value.
func parseHours(cell string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
