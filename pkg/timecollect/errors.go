package timecollect

import (
	"errors"
	"fmt"
)

// ErrNoSheets indicates a run without any reporting sheet names.
var ErrNoSheets = errors.New("no sheets to process")

// Pipeline stages reported by StageError.
const (
	StageProjects  = "projects"
	StageSchedule  = "schedule"
	StageRoster    = "roster"
	StageTimesheet = "timesheet"
)

// StageError represents a failure of one pipeline stage.
type StageError struct {
	Sheet    string
	Employee string
	Stage    string
	Err      error
}

func (e *StageError) Error() string {
	switch {
	case e.Employee != "":
		return fmt.Sprintf("%s error in sheet %q for %s: %v", e.Stage, e.Sheet, e.Employee, e.Err)
	case e.Sheet != "":
		return fmt.Sprintf("%s error in sheet %q: %v", e.Stage, e.Sheet, e.Err)
	default:
		return fmt.Sprintf("%s error: %v", e.Stage, e.Err)
	}
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(sheet, employee, stage string, err error) *StageError {
	return &StageError{
		Sheet:    sheet,
		Employee: employee,
		Stage:    stage,
		Err:      err,
	}
}
