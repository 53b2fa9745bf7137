package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/timecollect-go/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestWeeksDate(t *testing.T) {
	tests := []struct {
		date     string
		expected string
	}{
		{"2025-01-01", "1A"},
		{"2025-01-06", "1B"},
		{"2025-01-28", "1to2"},
		{"2025-03-12", "3B"},
		{"2027-01-01", "None"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			out, err := execute(t, "weeks", "--date", tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, strings.TrimSpace(out))
		})
	}
}

func TestWeeksTable(t *testing.T) {
	out, err := execute(t, "weeks", "--start", "2024-12-29")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 54) // header + 53 periods
	assert.Contains(t, lines[1], "2024-12-29")
	assert.Contains(t, lines[1], "1A")
	assert.Contains(t, lines[53], "2025-12-28")
}

func TestWeeksJSON(t *testing.T) {
	out, err := execute(t, "weeks", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "12to1"`)
}

func TestWeeksRejectsBadInput(t *testing.T) {
	for _, args := range [][]string{
		{"weeks", "--start", "2024-12-30"}, // Monday
		{"weeks", "--start", "yesterday"},
		{"weeks", "--date", "2025-02-30"},
	} {
		_, err := execute(t, args...)
		assert.Error(t, err, "args %v", args)
	}
}

func TestApplyFlags(t *testing.T) {
	cfg := config.Default()
	applyFlags(cfg, runFlags{
		outputPath:  "out/report.json",
		format:      "json",
		workbookDir: "exports",
		sheets:      []string{"202601"},
	})

	assert.Equal(t, "out/report.json", cfg.Output.File)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "exports", cfg.Timesheet.WorkbookDir)
	assert.Equal(t, []string{"202601"}, cfg.Timesheet.Sheets)
}

func TestPipelineOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Google.ProjectSpreadsheetID = "projects"
	cfg.Timesheet.DropColumns = []int{3, 4}
	cfg.Timesheet.Workers = 2

	opts, err := pipelineOptions(cfg)
	require.NoError(t, err)
	assert.Equal(t, "projects", opts.ProjectSpreadsheetID)
	assert.Equal(t, []int{3, 4}, opts.Layout.DropColumns)
	assert.Equal(t, 2, opts.Workers)
	assert.Equal(t, "2024-12-29", opts.ScheduleStart.Format(dateLayout))

	cfg.Schedule.StartDay = 31
	cfg.Schedule.StartMonth = 2
	_, err = pipelineOptions(cfg)
	assert.Error(t, err)
}
