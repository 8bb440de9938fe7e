package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalDateRoundTrip(t *testing.T) {
	d, err := ParseLocalDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, LocalDate{Year: 2024, Month: time.March, Day: 1}, d)
	assert.Equal(t, "2024-03-01", d.String())

	_, err = ParseLocalDate("01/03/2024")
	assert.Error(t, err)
	_, err = ParseLocalDate("2024-13-01")
	assert.Error(t, err)
}

func TestDateOfUsesLocalCalendarFields(t *testing.T) {
	// 23:30 local on March 1: the local date is March 1 regardless of what
	// the same instant's UTC date would be.
	loc := time.FixedZone("UTC+10", 10*3600)
	instant := time.Date(2024, time.March, 1, 23, 30, 0, 0, loc)

	assert.Equal(t, "2024-03-01", DateOf(instant).String())
	assert.NotEqual(t, DateOf(instant).String(), instant.UTC().Format("2006-01-02"))
}

func TestAddDaysAcrossMonthAndYear(t *testing.T) {
	d := LocalDate{Year: 2024, Month: time.February, Day: 28}
	assert.Equal(t, "2024-02-29", d.AddDays(1).String(), "2024 is a leap year")
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())

	eoy := LocalDate{Year: 2023, Month: time.December, Day: 31}
	assert.Equal(t, "2024-01-01", eoy.AddDays(1).String())
	assert.Equal(t, "2023-12-30", eoy.AddDays(-1).String())
}

func TestMonthBounds(t *testing.T) {
	d := LocalDate{Year: 2024, Month: time.February, Day: 15}
	assert.Equal(t, "2024-02-01", d.FirstOfMonth().String())
	assert.Equal(t, "2024-02-29", d.LastOfMonth().String())

	d = LocalDate{Year: 2024, Month: time.December, Day: 5}
	assert.Equal(t, "2024-12-31", d.LastOfMonth().String())
}

func TestBeforeAfter(t *testing.T) {
	a := LocalDate{Year: 2024, Month: time.March, Day: 1}
	b := LocalDate{Year: 2024, Month: time.March, Day: 2}
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
	assert.False(t, a.After(a))
}
