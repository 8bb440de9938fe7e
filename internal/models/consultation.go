package models

import (
	"time"
)

// Consultation represents the clinical notes taken during a visit.
// It may be linked to the appointment that produced it.
type Consultation struct {
	BaseModel
	PatientID     string    `gorm:"size:36;index" json:"patientId"`
	DentistID     string    `gorm:"size:36;index" json:"dentistId"`
	AppointmentID *string   `gorm:"size:36;index" json:"appointmentId,omitempty"`
	Date          time.Time `json:"date"`
	Diagnosis     string    `gorm:"type:text" json:"diagnosis,omitempty"`
	Treatment     string    `gorm:"type:text" json:"treatment,omitempty"`
	Prescription  string    `gorm:"type:text" json:"prescription,omitempty"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`

	// Relations
	Patient     Patient      `gorm:"foreignKey:PatientID" json:"-"`
	Dentist     User         `gorm:"foreignKey:DentistID" json:"-"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"-"`
}
