// Package output writes pipeline reports as xlsx workbooks or JSON.
package output

import (
	"encoding/json"

	"github.com/ukaji3/timecollect-go/pkg/timecollect/models"
)

// ToJSON serializes a report.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	return marshal(report, pretty)
}

// SheetToJSON serializes a single sheet of a report.
func SheetToJSON(sheet *models.SheetReport, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

// PeriodsToJSON serializes a week schedule, indented.
func PeriodsToJSON(periods []models.WeekPeriod) ([]byte, error) {
	return marshal(periods, true)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
