// Package models defines the records exchanged between the timecollect stages.
package models

import "time"

// WeekPeriod is one Sunday-to-Saturday reporting week.
type WeekPeriod struct {
	// Start is the Sunday opening the period (midnight UTC).
	Start time.Time `json:"start_date"`
	// End is the Saturday closing the period, Start + 6 days.
	End time.Time `json:"end_date"`
	// Sequence is the 1-based position in the generated schedule.
	Sequence int `json:"sequence_number"`
	// Name is the week type label, e.g. "1B" or "2to3".
	Name string `json:"name"`
}

// Contains reports whether t falls on a calendar day inside [Start, End].
func (p WeekPeriod) Contains(t time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(p.Start) && !day.After(p.End)
}
