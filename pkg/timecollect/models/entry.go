package models

// TimesheetEntry is a single non-zero hour cell of an employee timesheet.
// Field order matches the exported column order.
type TimesheetEntry struct {
	// Client is the billing client of ProjectCode ("YTP" when unknown).
	Client string `json:"client"`
	// RowNumber is the 1-based data row the hours were read from.
	RowNumber int `json:"row_number"`
	Year      int `json:"year"`
	Month     int `json:"month"`
	Day       int `json:"day"`
	// WeekType is the name of the period containing the date, or "None".
	WeekType     string `json:"week_type"`
	EmployeeName string `json:"employee_name"`
	ProjectCode  string `json:"project_code"`
	TaskType     string `json:"task_type"`
	// WorkType is the positional category of the column (date, indirect, direct).
	WorkType     string  `json:"work_type"`
	EmployeeTeam string  `json:"employee_team"`
	WorkedHours  float64 `json:"worked_hours"`
}
