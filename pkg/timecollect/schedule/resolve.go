package schedule

import (
	"time"

	"github.com/ukaji3/timecollect-go/pkg/timecollect/models"
)

// Resolve returns the name of the first period containing year-month-day.
// ok is false when no period contains the date; err is non-nil only for an
// impossible calendar date.
func Resolve(periods []models.WeekPeriod, year, month, day int) (name string, ok bool, err error) {
	date, err := Date(year, month, day)
	if err != nil {
		return "", false, err
	}
	name, ok = ResolveDate(periods, date)
	return name, ok, nil
}

// ResolveDate is Resolve for an already constructed date.
func ResolveDate(periods []models.WeekPeriod, date time.Time) (string, bool) {
	for _, p := range periods {
		if p.Contains(date) {
			return p.Name, true
		}
	}
	return "", false
}
