// Package schedule builds the weekly reporting periods and resolves dates to week types.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/ukaji3/timecollect-go/pkg/timecollect/models"
)

// Horizon is the maximum number of weekly periods generated (two years).
const Horizon = 104

// LastPeriodName is forced onto the final generated period.
const LastPeriodName = "12to1"

// ErrInvalidScheduleStart indicates a schedule start date that is not a Sunday.
var ErrInvalidScheduleStart = errors.New("schedule start must be a Sunday")

// ErrInvalidDate indicates a (year, month, day) triple that is not a calendar date.
var ErrInvalidDate = errors.New("invalid calendar date")

// Date builds a UTC midnight date, rejecting triples time.Date would normalize
// (e.g. February 30th).
func Date(year, month, day int) (time.Time, error) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return t, nil
}

// GenerateDate is Generate for a start given as integers.
func GenerateDate(year, month, day int) ([]models.WeekPeriod, error) {
	start, err := Date(year, month, day)
	if err != nil {
		return nil, err
	}
	return Generate(start)
}

// Generate returns the weekly periods starting at start, which must be a Sunday.
// At most Horizon periods are produced; generation stops early once a period
// would start in start.Year()+2. The last period is always named LastPeriodName.
func Generate(start time.Time) ([]models.WeekPeriod, error) {
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	if start.Weekday() != time.Sunday {
		return nil, fmt.Errorf("%w: %s is a %s",
			ErrInvalidScheduleStart, start.Format(time.DateOnly), start.Weekday())
	}

	stopYear := start.Year() + 2
	periods := make([]models.WeekPeriod, 0, Horizon)
	for i := 0; i < Horizon; i++ {
		sunday := start.AddDate(0, 0, i*7)
		if sunday.Year() >= stopYear {
			break
		}
		saturday := sunday.AddDate(0, 0, 6)
		periods = append(periods, models.WeekPeriod{
			Start:    sunday,
			End:      saturday,
			Sequence: i + 1,
			Name:     Name(sunday, saturday),
		})
	}

	periods[len(periods)-1].Name = LastPeriodName
	return periods, nil
}

// Name derives the week type label of the period [start, end].
//
// Rules run in order and each later match overrides the earlier label:
//
//	base                          {start month}{'A' + (start day-1)/7}
//	month and year differ         {end month}A
//	start month is January        {start month}{'B' + (start day-1)/7}
//	month differs, same year      {start month}to{end month}
//	same ISO week number          base
func Name(start, end time.Time) string {
	_, startWeek := start.ISOWeek()
	_, endWeek := end.ISOWeek()
	startMonth, endMonth := int(start.Month()), int(end.Month())
	bucket := (start.Day() - 1) / 7

	base := fmt.Sprintf("%d%c", startMonth, 'A'+bucket)
	name := base

	if startMonth != endMonth && start.Year() != end.Year() {
		name = fmt.Sprintf("%dA", endMonth)
	}
	if startMonth == 1 {
		name = fmt.Sprintf("%d%c", startMonth, 'B'+bucket)
	}
	if startMonth != endMonth && start.Year() == end.Year() {
		name = fmt.Sprintf("%dto%d", startMonth, endMonth)
	}
	if startWeek == endWeek {
		name = base
	}
	return name
}
