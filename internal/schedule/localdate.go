package schedule

import (
	"fmt"
	"time"
)

// LocalDate is a calendar date with no time-of-day and no timezone. The
// clinic runs in a single location, so a date is just the three local
// calendar fields; converting through UTC instants is what causes
// off-by-one-day bugs and is deliberately avoided here.
type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf extracts the local calendar fields from t.
func DateOf(t time.Time) LocalDate {
	y, m, d := t.Date()
	return LocalDate{Year: y, Month: m, Day: d}
}

// ParseLocalDate parses a YYYY-MM-DD string.
func ParseLocalDate(s string) (LocalDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return LocalDate{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// String formats the date as YYYY-MM-DD.
func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero reports whether d is the zero value.
func (d LocalDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// toTime returns the date at midnight local time. Used internally for
// calendar arithmetic; the result never leaves the package as a timestamp.
func (d LocalDate) toTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// Weekday returns the day of the week.
func (d LocalDate) Weekday() time.Weekday {
	return d.toTime().Weekday()
}

// AddDays returns the date n days after d (n may be negative).
func (d LocalDate) AddDays(n int) LocalDate {
	return DateOf(d.toTime().AddDate(0, 0, n))
}

// AddMonths returns the date n calendar months after d. Overflowing days
// normalize the way time.AddDate does (Jan 31 + 1 month = Mar 2/3).
func (d LocalDate) AddMonths(n int) LocalDate {
	return DateOf(d.toTime().AddDate(0, n, 0))
}

// FirstOfMonth returns the first day of d's month.
func (d LocalDate) FirstOfMonth() LocalDate {
	return LocalDate{Year: d.Year, Month: d.Month, Day: 1}
}

// LastOfMonth returns the last day of d's month.
func (d LocalDate) LastOfMonth() LocalDate {
	return DateOf(time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.Local))
}

// Before reports whether d is earlier than other.
func (d LocalDate) Before(other LocalDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is later than other.
func (d LocalDate) After(other LocalDate) bool {
	return other.Before(d)
}
