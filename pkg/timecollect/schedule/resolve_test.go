package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestResolve(t *testing.T) {
	periods, err := GenerateDate(2024, 12, 29)
	if err != nil {
		t.Fatalf("GenerateDate failed: %v", err)
	}

	tests := []struct {
		year, month, d int
		name           string
		ok             bool
	}{
		{2024, 12, 29, "1A", true},
		{2025, 1, 3, "1A", true},
		{2025, 1, 4, "1A", true},
		{2025, 1, 5, "1B", true},
		{2025, 2, 1, "1to2", true},
		{2026, 1, 3, LastPeriodName, true},
		{2024, 12, 28, "", false},
		{2026, 1, 4, "", false},
	}

	for _, tt := range tests {
		name, ok, err := Resolve(periods, tt.year, tt.month, tt.d)
		if err != nil {
			t.Errorf("Resolve(%d-%d-%d) error: %v", tt.year, tt.month, tt.d, err)
			continue
		}
		if name != tt.name || ok != tt.ok {
			t.Errorf("Resolve(%d-%d-%d) = (%q, %v), expected (%q, %v)",
				tt.year, tt.month, tt.d, name, ok, tt.name, tt.ok)
		}
	}
}

func TestResolveEveryDayOfEveryPeriod(t *testing.T) {
	periods, err := GenerateDate(2023, 12, 31)
	if err != nil {
		t.Fatalf("GenerateDate failed: %v", err)
	}
	for _, p := range periods {
		for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
			name, ok := ResolveDate(periods, d)
			if !ok || name != p.Name {
				t.Fatalf("ResolveDate(%s) = (%q, %v), expected %q",
					d.Format(time.DateOnly), name, ok, p.Name)
			}
		}
	}
}

func TestResolveInvalidDate(t *testing.T) {
	periods, _ := GenerateDate(2024, 12, 29)

	for _, tt := range [][3]int{{2025, 2, 29}, {2025, 13, 1}, {2025, 4, 31}, {2025, 0, 10}} {
		_, ok, err := Resolve(periods, tt[0], tt[1], tt[2])
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("Resolve(%v): expected ErrInvalidDate, got %v", tt, err)
		}
		if ok {
			t.Errorf("Resolve(%v): expected no match", tt)
		}
	}
}

func TestResolveIgnoresTimeOfDay(t *testing.T) {
	periods, _ := GenerateDate(2024, 12, 29)
	late := time.Date(2025, 1, 4, 23, 59, 0, 0, time.UTC)
	if name, ok := ResolveDate(periods, late); !ok || name != "1A" {
		t.Errorf("ResolveDate(late Saturday) = (%q, %v), expected (\"1A\", true)", name, ok)
	}
}
