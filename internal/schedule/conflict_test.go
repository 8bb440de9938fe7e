package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dental-clinic-server/internal/models"
)

func makeAppointment(id, date, timeOfDay string, duration int, status models.AppointmentStatus) models.Appointment {
	a := models.Appointment{
		Date:            date,
		Time:            timeOfDay,
		DurationMinutes: duration,
		Status:          status,
	}
	a.ID = id
	return a
}

func TestCheckConflictOverlap(t *testing.T) {
	existing := []models.Appointment{
		makeAppointment("a1", "2024-03-01", "10:00", 60, models.StatusScheduled),
	}

	conflict, err := CheckConflict(ProposedBooking{
		Date:            "2024-03-01",
		Time:            "10:30",
		DurationMinutes: 30,
	}, "", existing)
	require.NoError(t, err)
	assert.True(t, conflict, "10:30-11:00 lies inside 10:00-11:00")
}

func TestCheckConflictBackToBack(t *testing.T) {
	existing := []models.Appointment{
		makeAppointment("a1", "2024-03-01", "10:00", 60, models.StatusScheduled),
	}

	conflict, err := CheckConflict(ProposedBooking{
		Date:            "2024-03-01",
		Time:            "11:00",
		DurationMinutes: 30,
	}, "", existing)
	require.NoError(t, err)
	assert.False(t, conflict, "half-open intervals: starting at the other's end is fine")

	// Ending exactly at the other's start is also fine.
	conflict, err = CheckConflict(ProposedBooking{
		Date:            "2024-03-01",
		Time:            "09:30",
		DurationMinutes: 30,
	}, "", existing)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestCheckConflictIgnoresInactive(t *testing.T) {
	for _, status := range []models.AppointmentStatus{models.StatusCancelled, models.StatusNoShow} {
		existing := []models.Appointment{
			makeAppointment("a1", "2024-03-01", "10:00", 60, status),
		}
		conflict, err := CheckConflict(ProposedBooking{
			Date:            "2024-03-01",
			Time:            "10:00",
			DurationMinutes: 30,
		}, "", existing)
		require.NoError(t, err)
		assert.False(t, conflict, "status %s must not block the window", status)
	}
}

func TestCheckConflictExcludesSelf(t *testing.T) {
	existing := []models.Appointment{
		makeAppointment("a1", "2024-03-01", "10:00", 60, models.StatusConfirmed),
	}

	// Rescheduling a1 onto its own window must not conflict with itself.
	conflict, err := CheckConflict(ProposedBooking{
		Date:            "2024-03-01",
		Time:            "10:00",
		DurationMinutes: 60,
	}, "a1", existing)
	require.NoError(t, err)
	assert.False(t, conflict)

	// But another appointment in the same window still does.
	conflict, err = CheckConflict(ProposedBooking{
		Date:            "2024-03-01",
		Time:            "10:00",
		DurationMinutes: 60,
	}, "a2", existing)
	require.NoError(t, err)
	assert.True(t, conflict)
}

func TestCheckConflictOtherDates(t *testing.T) {
	existing := []models.Appointment{
		makeAppointment("a1", "2024-03-02", "10:00", 60, models.StatusScheduled),
	}

	conflict, err := CheckConflict(ProposedBooking{
		Date:            "2024-03-01",
		Time:            "10:00",
		DurationMinutes: 60,
	}, "", existing)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestCheckConflictMalformedInputFailsClosed(t *testing.T) {
	existing := []models.Appointment{
		makeAppointment("a1", "2024-03-01", "10:00", 60, models.StatusScheduled),
	}

	cases := []ProposedBooking{
		{Date: "not-a-date", Time: "10:00", DurationMinutes: 30},
		{Date: "2024-03-01", Time: "25:00", DurationMinutes: 30},
		{Date: "2024-03-01", Time: "1030", DurationMinutes: 30},
		{Date: "2024-03-01", Time: "10:00", DurationMinutes: 0},
		{Date: "2024-03-01", Time: "10:00", DurationMinutes: -15},
	}
	for _, p := range cases {
		_, err := CheckConflict(p, "", existing)
		assert.Error(t, err, "booking %+v must be rejected with an error, not silently allowed", p)
	}
}

func TestCheckConflictMalformedCandidate(t *testing.T) {
	existing := []models.Appointment{
		makeAppointment("bad", "2024-03-01", "garbage", 60, models.StatusScheduled),
	}

	_, err := CheckConflict(ProposedBooking{
		Date:            "2024-03-01",
		Time:            "10:00",
		DurationMinutes: 30,
	}, "", existing)
	assert.Error(t, err)
}

func TestCheckConflictIdempotent(t *testing.T) {
	existing := []models.Appointment{
		makeAppointment("a1", "2024-03-01", "10:00", 60, models.StatusScheduled),
		makeAppointment("a2", "2024-03-01", "14:00", 30, models.StatusConfirmed),
	}
	p := ProposedBooking{Date: "2024-03-01", Time: "13:45", DurationMinutes: 30}

	first, err := CheckConflict(p, "", existing)
	require.NoError(t, err)
	second, err := CheckConflict(p, "", existing)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, first)
}

// Two bookings that each pass the checker against the other must have
// disjoint intervals.
func TestCheckConflictMutualAcceptanceMeansDisjoint(t *testing.T) {
	a := makeAppointment("a", "2024-03-01", "09:00", 60, models.StatusScheduled)
	b := makeAppointment("b", "2024-03-01", "10:00", 90, models.StatusScheduled)

	conflictAB, err := CheckConflict(ProposedBooking{Date: a.Date, Time: a.Time, DurationMinutes: a.DurationMinutes}, "", []models.Appointment{b})
	require.NoError(t, err)
	conflictBA, err := CheckConflict(ProposedBooking{Date: b.Date, Time: b.Time, DurationMinutes: b.DurationMinutes}, "", []models.Appointment{a})
	require.NoError(t, err)

	require.False(t, conflictAB)
	require.False(t, conflictBA)
	// 09:00+60 = 10:00 <= b's start: disjoint.
	assert.LessOrEqual(t, "10:00", b.Time)
}
