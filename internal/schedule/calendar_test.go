package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dental-clinic-server/internal/models"
)

func TestMonthGridMarch2024(t *testing.T) {
	// 2024-03-15 is a Friday; March 1 is a Friday, March 31 a Sunday.
	ref := LocalDate{Year: 2024, Month: time.March, Day: 15}

	cells := MonthGrid(ref)
	require.Len(t, cells, 42, "6 full weeks")

	assert.Equal(t, "2024-02-25", cells[0].String(), "first cell is the Sunday on/before March 1")
	assert.Equal(t, "2024-04-06", cells[41].String(), "last cell is the Saturday on/after March 31")
	assert.Equal(t, time.Sunday, cells[0].Weekday())
	assert.Equal(t, time.Saturday, cells[41].Weekday())
}

func TestMonthGridStartsOnSundayWhenFirstIsSunday(t *testing.T) {
	// September 2024 starts on a Sunday.
	cells := MonthGrid(LocalDate{Year: 2024, Month: time.September, Day: 10})
	assert.Equal(t, "2024-09-01", cells[0].String())
	assert.Equal(t, "2024-10-05", cells[len(cells)-1].String())
}

func TestWeekDays(t *testing.T) {
	// 2024-03-15 is a Friday; its week starts Sunday 2024-03-10.
	days := WeekDays(LocalDate{Year: 2024, Month: time.March, Day: 15})
	require.Len(t, days, 7)
	assert.Equal(t, "2024-03-10", days[0].String())
	assert.Equal(t, "2024-03-16", days[6].String())

	// A Sunday reference is its own week start.
	days = WeekDays(LocalDate{Year: 2024, Month: time.March, Day: 10})
	assert.Equal(t, "2024-03-10", days[0].String())
}

func TestNavigate(t *testing.T) {
	ref := LocalDate{Year: 2024, Month: time.March, Day: 15}

	assert.Equal(t, "2024-04-15", Navigate(ViewMonth, ref, 1).String())
	assert.Equal(t, "2024-02-15", Navigate(ViewMonth, ref, -1).String())
	assert.Equal(t, "2024-03-22", Navigate(ViewWeek, ref, 1).String())
	assert.Equal(t, "2024-03-08", Navigate(ViewWeek, ref, -1).String())
	assert.Equal(t, "2024-03-16", Navigate(ViewDay, ref, 1).String())
	assert.Equal(t, "2024-03-14", Navigate(ViewDay, ref, -1).String())
}

func TestParseView(t *testing.T) {
	for _, valid := range []string{"month", "week", "day"} {
		v, err := ParseView(valid)
		require.NoError(t, err)
		assert.Equal(t, View(valid), v)
	}
	_, err := ParseView("year")
	assert.Error(t, err)
}

func TestBucket(t *testing.T) {
	cells := WeekDays(LocalDate{Year: 2024, Month: time.March, Day: 15})
	appointments := []models.Appointment{
		makeAppointment("a1", "2024-03-11", "14:00", 30, models.StatusScheduled),
		makeAppointment("a2", "2024-03-11", "09:00", 60, models.StatusConfirmed),
		makeAppointment("a3", "2024-03-13", "10:00", 30, models.StatusScheduled),
		makeAppointment("a4", "2024-03-20", "10:00", 30, models.StatusScheduled), // outside the week
	}

	buckets := Bucket(appointments, cells)
	require.Len(t, buckets, 7)

	monday := buckets["2024-03-11"]
	require.Len(t, monday, 2)
	assert.Equal(t, "09:00", monday[0].Time, "cells are ordered by start time")
	assert.Equal(t, "14:00", monday[1].Time)

	assert.Len(t, buckets["2024-03-13"], 1)
	assert.Empty(t, buckets["2024-03-12"], "empty cells are present for grid rendering")
	_, ok := buckets["2024-03-20"]
	assert.False(t, ok, "appointments outside the cells are dropped")
}
