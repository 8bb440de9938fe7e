package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentIsActive(t *testing.T) {
	active := []AppointmentStatus{
		StatusRequested, StatusScheduled, StatusConfirmed,
		StatusInProgress, StatusCompleted,
	}
	for _, status := range active {
		a := Appointment{Status: status}
		assert.True(t, a.IsActive(), "status %s should be active", status)
	}

	for _, status := range []AppointmentStatus{StatusCancelled, StatusNoShow} {
		a := Appointment{Status: status}
		assert.False(t, a.IsActive(), "status %s should be inactive", status)
	}
}

func TestToothRecordConditionsRoundTrip(t *testing.T) {
	var record ToothRecord

	record.SetConditions([]string{"caries", "fracture"})
	assert.Equal(t, "caries,fracture", record.Conditions)
	assert.Equal(t, []string{"caries", "fracture"}, record.ConditionList())

	record.SetConditions(nil)
	assert.Empty(t, record.Conditions)
	assert.Nil(t, record.ConditionList())
}

func TestIsKnownToothCondition(t *testing.T) {
	assert.True(t, IsKnownToothCondition("healthy"))
	assert.True(t, IsKnownToothCondition("root_canal"))
	assert.False(t, IsKnownToothCondition("HEALTHY"))
	assert.False(t, IsKnownToothCondition(""))
}

func TestUserPasswordHashing(t *testing.T) {
	var user User
	assert.NoError(t, user.SetPassword("correct horse battery"))
	assert.NotEqual(t, "correct horse battery", user.Password)
	assert.True(t, user.CheckPassword("correct horse battery"))
	assert.False(t, user.CheckPassword("wrong password"))
}
