package output

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/timecollect-go/pkg/timecollect/models"
)

func TestToJSON(t *testing.T) {
	report := &models.Report{Sheets: []models.SheetReport{
		{Name: "202509", Entries: []models.TimesheetEntry{sampleEntry(2.5)}},
	}}

	data, err := ToJSON(report, false)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "\n"))

	var decoded map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded["sheets"], 1)
	assert.Equal(t, "202509", decoded["sheets"][0]["sheet_name"])

	entries := decoded["sheets"][0]["entries"].([]interface{})
	entry := entries[0].(map[string]interface{})
	assert.Equal(t, "9B", entry["week_type"])
	assert.Equal(t, 2.5, entry["worked_hours"])

	pretty, err := ToJSON(report, true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  ")
}

func TestSheetToJSON(t *testing.T) {
	sheet := &models.SheetReport{Name: "202510"}
	data, err := SheetToJSON(sheet, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"sheet_name": "202510", "entries": null}`, string(data))
}

func TestPeriodsToJSON(t *testing.T) {
	periods := []models.WeekPeriod{{
		Start:    time.Date(2024, 12, 29, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC),
		Sequence: 1,
		Name:     "1A",
	}}

	data, err := PeriodsToJSON(periods)
	require.NoError(t, err)
	assert.JSONEq(t, `[{
		"start_date": "2024-12-29T00:00:00Z",
		"end_date": "2025-01-04T00:00:00Z",
		"sequence_number": 1,
		"name": "1A"
	}]`, string(data))
}
