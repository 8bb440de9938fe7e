package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"dental-clinic-server/internal/models"
)

// ProposedBooking is the booking a caller wants to validate: a date, a start
// time and a duration. Intervals are half-open, [start, start+duration), so
// back-to-back bookings never conflict.
type ProposedBooking struct {
	Date            string // YYYY-MM-DD
	Time            string // HH:MM
	DurationMinutes int
}

// parseMinuteOfDay converts an HH:MM string to minutes since midnight.
func parseMinuteOfDay(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return hour*60 + minute, nil
}

// formatMinuteOfDay converts minutes since midnight back to HH:MM.
func formatMinuteOfDay(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// CheckConflict reports whether the proposed booking overlaps any active
// appointment in candidates on the same date. An appointment whose ID equals
// excludeID is skipped, so an edit never conflicts with itself; pass "" when
// creating. Cancelled and no-show candidates never conflict.
//
// Malformed input is an error, never a silent "no conflict": callers must
// fail closed and reject the booking rather than risk a double booking on
// bad data.
func CheckConflict(p ProposedBooking, excludeID string, candidates []models.Appointment) (bool, error) {
	if _, err := ParseLocalDate(p.Date); err != nil {
		return false, err
	}
	start, err := parseMinuteOfDay(p.Time)
	if err != nil {
		return false, err
	}
	if p.DurationMinutes <= 0 {
		return false, fmt.Errorf("invalid duration %d: must be positive", p.DurationMinutes)
	}
	end := start + p.DurationMinutes

	for i := range candidates {
		cand := &candidates[i]
		if cand.Date != p.Date {
			continue
		}
		if excludeID != "" && cand.ID == excludeID {
			continue
		}
		if !cand.IsActive() {
			continue
		}
		candStart, err := parseMinuteOfDay(cand.Time)
		if err != nil {
			return false, fmt.Errorf("appointment %s: %w", cand.ID, err)
		}
		candDuration := cand.DurationMinutes
		if candDuration <= 0 {
			return false, fmt.Errorf("appointment %s: invalid duration %d", cand.ID, candDuration)
		}
		candEnd := candStart + candDuration

		if start < candEnd && end > candStart {
			return true, nil
		}
	}
	return false, nil
}
