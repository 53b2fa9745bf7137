package models

// Employee is one row of the employee directory sheet.
type Employee struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Nickname      string `json:"nickname"`
	SpreadsheetID string `json:"spreadsheet_id"`
	Team          string `json:"team"`
}
