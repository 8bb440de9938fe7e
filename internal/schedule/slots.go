package schedule

import (
	"time"

	"dental-clinic-server/internal/models"
)

// ClinicHours describes the bookable window of a working day.
type ClinicHours struct {
	OpenMinute     int            // minutes since midnight, inclusive
	CloseMinute    int            // minutes since midnight, exclusive
	SlotMinutes    int            // slot step size
	ClosedWeekdays []time.Weekday // days the clinic does not open
}

// DefaultClinicHours is the standard 09:00-18:00 window in 30-minute slots,
// closed on Sundays.
func DefaultClinicHours() ClinicHours {
	return ClinicHours{
		OpenMinute:     9 * 60,
		CloseMinute:    18 * 60,
		SlotMinutes:    30,
		ClosedWeekdays: []time.Weekday{time.Sunday},
	}
}

// IsOpenOn reports whether the clinic opens on the given date's weekday.
func (h ClinicHours) IsOpenOn(date LocalDate) bool {
	wd := date.Weekday()
	for _, closed := range h.ClosedWeekdays {
		if wd == closed {
			return false
		}
	}
	return true
}

// Slot is one bookable time window on a day's grid.
type Slot struct {
	Time      string `json:"time"` // HH:MM start of the slot
	Available bool   `json:"available"`
}

// Slots enumerates the clinic's bookable slots for a date and marks each as
// available or taken. A slot is taken when any active appointment on that
// date overlaps the slot's half-open window; availability uses the same
// interval semantics as CheckConflict, so a 60-minute appointment blocks
// both 30-minute slots it spans. Dates on a closed weekday yield no slots.
//
// Candidates with unparseable times or non-positive durations are skipped:
// slot annotation is presentational, and a corrupt row should not blank the
// whole grid. Write paths validate through CheckConflict, which is strict.
func (h ClinicHours) Slots(date LocalDate, candidates []models.Appointment) []Slot {
	if !h.IsOpenOn(date) {
		return nil
	}
	dateStr := date.String()

	var slots []Slot
	for start := h.OpenMinute; start+h.SlotMinutes <= h.CloseMinute; start += h.SlotMinutes {
		end := start + h.SlotMinutes
		available := true
		for i := range candidates {
			cand := &candidates[i]
			if cand.Date != dateStr || !cand.IsActive() {
				continue
			}
			candStart, err := parseMinuteOfDay(cand.Time)
			if err != nil || cand.DurationMinutes <= 0 {
				continue
			}
			candEnd := candStart + cand.DurationMinutes
			if start < candEnd && end > candStart {
				available = false
				break
			}
		}
		slots = append(slots, Slot{Time: formatMinuteOfDay(start), Available: available})
	}
	return slots
}
