package models

import (
	"time"
)

// Patient represents a clinic chart. A patient may optionally be linked to a
// portal User account; walk-in patients registered by staff have no account.
type Patient struct {
	BaseModel
	FirstName      string     `gorm:"size:100;not null" json:"firstName"`
	LastName       string     `gorm:"size:100;not null" json:"lastName"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty"`
	PhoneNumber    string     `gorm:"size:30" json:"phoneNumber,omitempty"`
	Email          string     `gorm:"size:255" json:"email,omitempty"`
	Address        string     `gorm:"size:255" json:"address,omitempty"`
	Allergies      string     `gorm:"type:text" json:"allergies,omitempty"`
	MedicalHistory string     `gorm:"type:text" json:"medicalHistory,omitempty"`
	UserID         *string    `gorm:"size:36;index" json:"userId,omitempty"`

	// Relations (not always preloaded)
	User          *User          `gorm:"foreignKey:UserID" json:"-"`
	Appointments  []Appointment  `gorm:"foreignKey:PatientID" json:"-"`
	ToothRecords  []ToothRecord  `gorm:"foreignKey:PatientID" json:"-"`
	Consultations []Consultation `gorm:"foreignKey:PatientID" json:"-"`
	Files         []PatientFile  `gorm:"foreignKey:PatientID" json:"-"`
}
