// Package timecollect collects weekly employee timesheets into per-entry reports.
package timecollect

import (
	"time"

	"github.com/ukaji3/timecollect-go/pkg/timecollect/transform"
)

// Options configures a pipeline run.
type Options struct {
	// ProjectSpreadsheetID and ProjectRange locate the project reference rows
	// [code, name, client, ...].
	ProjectSpreadsheetID string
	ProjectRange         string
	// EmployeesSpreadsheetID holds one roster sheet per reporting period.
	EmployeesSpreadsheetID string
	// SheetNames are the reporting periods to process, e.g. "202509".
	SheetNames []string
	// DirectoryRange is read from each roster sheet, e.g. "A:E".
	DirectoryRange string
	// TimesheetRange is read from each employee's sheet, e.g. "A7:BT39".
	TimesheetRange string
	// ScheduleStart is the first Sunday of the week schedule.
	ScheduleStart time.Time
	// Layout describes the timesheet columns.
	Layout transform.Layout
	// Workers bounds the number of employees processed at once.
	// If zero, employees are processed one at a time.
	Workers int
}

// DefaultOptions returns default pipeline options. Spreadsheet IDs and the
// project range must still be set.
func DefaultOptions() Options {
	return Options{
		SheetNames:     []string{"202509", "202510"},
		DirectoryRange: "A:E",
		TimesheetRange: "A7:BT39",
		ScheduleStart:  time.Date(2024, time.December, 29, 0, 0, 0, 0, time.UTC),
		Layout:         transform.DefaultLayout(),
		Workers:        4,
	}
}

// workers returns the effective worker count.
func (o Options) workers() int {
	if o.Workers < 1 {
		return 1
	}
	return o.Workers
}

// directoryRange returns the roster range for sheet.
func (o Options) directoryRange(sheet string) string {
	return sheet + "!" + o.DirectoryRange
}

// timesheetRange returns the timesheet range for sheet.
func (o Options) timesheetRange(sheet string) string {
	return sheet + "!" + o.TimesheetRange
}
