package schedule

import (
	"fmt"
	"sort"
	"time"

	"dental-clinic-server/internal/models"
)

// View selects the calendar layout.
type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
	ViewDay   View = "day"
)

// ParseView validates a view query parameter.
func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewMonth, ViewWeek, ViewDay:
		return View(s), nil
	}
	return "", fmt.Errorf("invalid view %q: want month, week or day", s)
}

// MonthGrid returns the visible cells for a month view: every date from the
// Sunday on/before the first of ref's month through the Saturday on/after
// the last day. The result is always a whole number of 7-day rows.
func MonthGrid(ref LocalDate) []LocalDate {
	first := ref.FirstOfMonth()
	last := ref.LastOfMonth()

	start := first.AddDays(-int(first.Weekday()))
	end := last.AddDays(int(time.Saturday - last.Weekday()))

	var cells []LocalDate
	for d := start; !d.After(end); d = d.AddDays(1) {
		cells = append(cells, d)
	}
	return cells
}

// WeekDays returns the 7 consecutive days starting from the Sunday
// on/before ref.
func WeekDays(ref LocalDate) []LocalDate {
	start := ref.AddDays(-int(ref.Weekday()))
	days := make([]LocalDate, 7)
	for i := range days {
		days[i] = start.AddDays(i)
	}
	return days
}

// Navigate steps the reference date by delta periods for the given view:
// a calendar month for month view, 7 days for week view, 1 day for day view.
func Navigate(view View, ref LocalDate, delta int) LocalDate {
	switch view {
	case ViewMonth:
		return ref.AddMonths(delta)
	case ViewWeek:
		return ref.AddDays(7 * delta)
	default:
		return ref.AddDays(delta)
	}
}

// Bucket partitions appointments into the given cells by exact date-string
// match, each cell ordered by start time. Appointments outside the cells are
// dropped; cells without appointments are present with an empty list so the
// caller can render a full grid.
func Bucket(appointments []models.Appointment, cells []LocalDate) map[string][]models.Appointment {
	buckets := make(map[string][]models.Appointment, len(cells))
	for _, cell := range cells {
		buckets[cell.String()] = []models.Appointment{}
	}
	for _, appt := range appointments {
		if list, ok := buckets[appt.Date]; ok {
			buckets[appt.Date] = append(list, appt)
		}
	}
	for key := range buckets {
		list := buckets[key]
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Time < list[j].Time
		})
		buckets[key] = list
	}
	return buckets
}
