package models

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusRequested  AppointmentStatus = "requested"
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
)

// AppointmentType represents the category of treatment an appointment is for
type AppointmentType string

const (
	TypeConsultation AppointmentType = "consultation"
	TypeCleaning     AppointmentType = "cleaning"
	TypeExtraction   AppointmentType = "extraction"
	TypeOrthodontics AppointmentType = "orthodontics"
	TypeEndodontics  AppointmentType = "endodontics"
	TypeSurgery      AppointmentType = "surgery"
	TypeCheckup      AppointmentType = "checkup"
	TypeEmergency    AppointmentType = "emergency"
)

// Appointment represents a scheduled dental appointment. Date and Time are
// kept as plain local-calendar strings (no timezone component) so that a
// booking made for "2024-03-01 10:00" never shifts across timezones.
type Appointment struct {
	BaseModel
	PatientID       string            `gorm:"size:36;index" json:"patientId"`
	DentistID       string            `gorm:"size:36;index" json:"dentistId"`
	Date            string            `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD
	Time            string            `gorm:"size:5;not null" json:"time"`        // HH:MM
	DurationMinutes int               `gorm:"default:60" json:"durationMinutes"`
	Type            AppointmentType   `gorm:"size:30;default:'consultation'" json:"type"`
	Status          AppointmentStatus `gorm:"size:20;default:'scheduled'" json:"status"`
	Reason          string            `gorm:"size:255" json:"reason,omitempty"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`

	// Relations
	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
	Dentist User    `gorm:"foreignKey:DentistID" json:"-"`
}

// IsActive reports whether the appointment counts toward conflict detection.
// Cancelled and no-show appointments release their time window.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}
