package schedule

import (
	"errors"
	"testing"
	"time"
)

func day(year, month, d int) time.Time {
	return time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateFirstPeriods(t *testing.T) {
	periods, err := GenerateDate(2024, 12, 29)
	if err != nil {
		t.Fatalf("GenerateDate failed: %v", err)
	}

	tests := []struct {
		seq   int
		start time.Time
		end   time.Time
		name  string
	}{
		{1, day(2024, 12, 29), day(2025, 1, 4), "1A"},
		{2, day(2025, 1, 5), day(2025, 1, 11), "1B"},
		{3, day(2025, 1, 12), day(2025, 1, 18), "1C"},
		{4, day(2025, 1, 19), day(2025, 1, 25), "1D"},
		{5, day(2025, 1, 26), day(2025, 2, 1), "1to2"},
		{6, day(2025, 2, 2), day(2025, 2, 8), "2A"},
		{7, day(2025, 2, 9), day(2025, 2, 15), "2B"},
		{9, day(2025, 2, 23), day(2025, 3, 1), "2to3"},
		{10, day(2025, 3, 2), day(2025, 3, 8), "3A"},
	}

	for _, tt := range tests {
		p := periods[tt.seq-1]
		if p.Sequence != tt.seq {
			t.Errorf("period %d: sequence = %d", tt.seq, p.Sequence)
		}
		if !p.Start.Equal(tt.start) || !p.End.Equal(tt.end) {
			t.Errorf("period %d: range = %s..%s, expected %s..%s", tt.seq,
				p.Start.Format(time.DateOnly), p.End.Format(time.DateOnly),
				tt.start.Format(time.DateOnly), tt.end.Format(time.DateOnly))
		}
		if p.Name != tt.name {
			t.Errorf("period %d: name = %q, expected %q", tt.seq, p.Name, tt.name)
		}
	}
}

func TestGenerateStopsAtYearBoundary(t *testing.T) {
	periods, err := GenerateDate(2024, 12, 29)
	if err != nil {
		t.Fatalf("GenerateDate failed: %v", err)
	}

	// Sundays 2024-12-29 .. 2025-12-28; 2026-01-04 is in start year + 2.
	if len(periods) != 53 {
		t.Fatalf("Expected 53 periods, got %d", len(periods))
	}
	last := periods[len(periods)-1]
	if !last.Start.Equal(day(2025, 12, 28)) {
		t.Errorf("Expected last period to start 2025-12-28, got %s", last.Start.Format(time.DateOnly))
	}
	if last.Name != LastPeriodName {
		t.Errorf("Expected last period name %q, got %q", LastPeriodName, last.Name)
	}
}

func TestGenerateFullHorizon(t *testing.T) {
	periods, err := GenerateDate(2023, 1, 1)
	if err != nil {
		t.Fatalf("GenerateDate failed: %v", err)
	}
	if len(periods) != Horizon {
		t.Fatalf("Expected %d periods, got %d", Horizon, len(periods))
	}
	last := periods[Horizon-1]
	if !last.Start.Equal(day(2024, 12, 22)) {
		t.Errorf("Expected last period to start 2024-12-22, got %s", last.Start.Format(time.DateOnly))
	}
	// Computed label would be "12D"; the last period is always renamed.
	if last.Name != LastPeriodName {
		t.Errorf("Expected %q, got %q", LastPeriodName, last.Name)
	}
	if periods[Horizon-2].Name != "12C" {
		t.Errorf("Expected second to last period %q, got %q", "12C", periods[Horizon-2].Name)
	}
}

func TestGenerateInvariants(t *testing.T) {
	for start := day(2019, 12, 29); start.Before(day(2027, 1, 1)); start = start.AddDate(0, 0, 7) {
		periods, err := Generate(start)
		if err != nil {
			t.Fatalf("Generate(%s) failed: %v", start.Format(time.DateOnly), err)
		}
		if len(periods) == 0 || len(periods) > Horizon {
			t.Fatalf("Generate(%s): %d periods", start.Format(time.DateOnly), len(periods))
		}

		for i, p := range periods {
			if p.Start.Weekday() != time.Sunday {
				t.Fatalf("%s #%d: start is a %s", start.Format(time.DateOnly), i, p.Start.Weekday())
			}
			if !p.End.Equal(p.Start.AddDate(0, 0, 6)) {
				t.Fatalf("%s #%d: end is not start + 6 days", start.Format(time.DateOnly), i)
			}
			if p.Sequence != i+1 {
				t.Fatalf("%s #%d: sequence %d", start.Format(time.DateOnly), i, p.Sequence)
			}
			if p.Start.Year() >= start.Year()+2 {
				t.Fatalf("%s #%d: start %s past horizon", start.Format(time.DateOnly), i, p.Start.Format(time.DateOnly))
			}
			if i > 0 && !p.Start.Equal(periods[i-1].End.AddDate(0, 0, 1)) {
				t.Fatalf("%s #%d: not contiguous with previous period", start.Format(time.DateOnly), i)
			}
		}

		if got := periods[len(periods)-1].Name; got != LastPeriodName {
			t.Fatalf("%s: last name = %q", start.Format(time.DateOnly), got)
		}
	}
}

func TestGenerateRejectsNonSunday(t *testing.T) {
	for offset := 1; offset < 7; offset++ {
		start := day(2024, 12, 29).AddDate(0, 0, offset)
		periods, err := Generate(start)
		if !errors.Is(err, ErrInvalidScheduleStart) {
			t.Errorf("Generate(%s): expected ErrInvalidScheduleStart, got %v", start.Format(time.DateOnly), err)
		}
		if periods != nil {
			t.Errorf("Generate(%s): expected no periods, got %d", start.Format(time.DateOnly), len(periods))
		}
	}
}

func TestGenerateDateRejectsInvalidDate(t *testing.T) {
	_, err := GenerateDate(2025, 2, 30)
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Expected ErrInvalidDate, got %v", err)
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		start    time.Time
		expected string
	}{
		{day(2025, 3, 9), "3B"},
		{day(2025, 3, 30), "3to4"},
		{day(2025, 6, 29), "6to7"},
		{day(2025, 11, 30), "11to12"},
		{day(2025, 12, 21), "12C"},
		{day(2025, 12, 28), "1A"},  // crosses into the next year
		{day(2026, 1, 4), "1B"},    // January shifts to B
		{day(2026, 1, 25), "1E"},   // January letters start at B
		{day(2024, 11, 17), "11C"},
	}

	for _, tt := range tests {
		result := Name(tt.start, tt.start.AddDate(0, 0, 6))
		if result != tt.expected {
			t.Errorf("Name(%s) = %q, expected %q", tt.start.Format(time.DateOnly), result, tt.expected)
		}
	}
}
