package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dental-clinic-server/internal/models"
)

func TestSlotsFullDayGrid(t *testing.T) {
	hours := DefaultClinicHours()
	// 2024-03-01 is a Friday.
	date := LocalDate{Year: 2024, Month: time.March, Day: 1}

	existing := []models.Appointment{
		makeAppointment("a1", "2024-03-01", "09:30", 30, models.StatusScheduled),
	}

	slots := hours.Slots(date, existing)
	require.Len(t, slots, 18, "09:00-18:00 in 30-minute steps")

	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "17:30", slots[17].Time)

	for _, slot := range slots {
		if slot.Time == "09:30" {
			assert.False(t, slot.Available, "occupied slot must be marked taken")
		} else {
			assert.True(t, slot.Available, "slot %s should be free", slot.Time)
		}
	}
}

func TestSlotsLongAppointmentBlocksSpannedSlots(t *testing.T) {
	hours := DefaultClinicHours()
	date := LocalDate{Year: 2024, Month: time.March, Day: 1}

	existing := []models.Appointment{
		makeAppointment("a1", "2024-03-01", "10:00", 90, models.StatusConfirmed),
	}

	slots := hours.Slots(date, existing)
	byTime := make(map[string]bool, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}

	assert.False(t, byTime["10:00"])
	assert.False(t, byTime["10:30"])
	assert.False(t, byTime["11:00"])
	assert.True(t, byTime["09:30"], "slot ending at the appointment start is free")
	assert.True(t, byTime["11:30"], "slot starting at the appointment end is free")
}

func TestSlotsIgnoreInactiveAndOtherDates(t *testing.T) {
	hours := DefaultClinicHours()
	date := LocalDate{Year: 2024, Month: time.March, Day: 1}

	existing := []models.Appointment{
		makeAppointment("a1", "2024-03-01", "09:00", 60, models.StatusCancelled),
		makeAppointment("a2", "2024-03-01", "10:00", 60, models.StatusNoShow),
		makeAppointment("a3", "2024-03-02", "11:00", 60, models.StatusScheduled),
	}

	for _, slot := range hours.Slots(date, existing) {
		assert.True(t, slot.Available, "slot %s should be free", slot.Time)
	}
}

func TestSlotsClosedDayIsEmpty(t *testing.T) {
	hours := DefaultClinicHours()
	// 2024-03-03 is a Sunday.
	sunday := LocalDate{Year: 2024, Month: time.March, Day: 3}
	assert.Empty(t, hours.Slots(sunday, nil))
}

func TestSlotsCustomWindow(t *testing.T) {
	hours := ClinicHours{
		OpenMinute:  8 * 60,
		CloseMinute: 12 * 60,
		SlotMinutes: 60,
	}
	date := LocalDate{Year: 2024, Month: time.March, Day: 4}

	slots := hours.Slots(date, nil)
	require.Len(t, slots, 4)
	assert.Equal(t, "08:00", slots[0].Time)
	assert.Equal(t, "11:00", slots[3].Time)
}
