package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Contains(t, cfg.Database.DSN, "dental_clinic")

	assert.Equal(t, 9, cfg.Clinic.OpenHour)
	assert.Equal(t, 18, cfg.Clinic.CloseHour)
	assert.Equal(t, 30, cfg.Clinic.SlotMinutes)
	assert.Equal(t, []time.Weekday{time.Sunday}, cfg.Clinic.ClosedWeekdays)
}

func TestLoadConfigClinicOverrides(t *testing.T) {
	t.Setenv("CLINIC_OPEN_HOUR", "8")
	t.Setenv("CLINIC_CLOSE_HOUR", "14")
	t.Setenv("CLINIC_SLOT_MINUTES", "60")
	t.Setenv("CLINIC_CLOSED_WEEKDAYS", "0,6")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Clinic.OpenHour)
	assert.Equal(t, 14, cfg.Clinic.CloseHour)
	assert.Equal(t, 60, cfg.Clinic.SlotMinutes)
	assert.Equal(t, []time.Weekday{time.Sunday, time.Saturday}, cfg.Clinic.ClosedWeekdays)
}

func TestLoadConfigRejectsBadClinicHours(t *testing.T) {
	t.Setenv("CLINIC_OPEN_HOUR", "18")
	t.Setenv("CLINIC_CLOSE_HOUR", "9")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadClosedWeekday(t *testing.T) {
	t.Setenv("CLINIC_CLOSED_WEEKDAYS", "7")

	_, err := LoadConfig()
	assert.Error(t, err)
}
