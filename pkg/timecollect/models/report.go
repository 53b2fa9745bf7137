package models

// SheetReport holds the entries collected for one reporting sheet (e.g. "202509").
type SheetReport struct {
	// Name is the reporting sheet name, reused as the output sheet name.
	Name string `json:"sheet_name"`
	// Entries are ordered by employee roster order, then row, then column.
	Entries []TimesheetEntry `json:"entries"`
}

// Report is the result of one pipeline run.
type Report struct {
	Sheets []SheetReport `json:"sheets"`
}

// EntryCount returns the number of entries across all sheets.
func (r *Report) EntryCount() int {
	n := 0
	for _, s := range r.Sheets {
		n += len(s.Entries)
	}
	return n
}
