package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dental-clinic-server/internal/config"
	"dental-clinic-server/internal/middleware"
	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/schedule"
	"dental-clinic-server/internal/utils"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	DB    *gorm.DB
	Hours schedule.ClinicHours
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(db *gorm.DB, cfg *config.Config) *AppointmentHandler {
	return &AppointmentHandler{
		DB:    db,
		Hours: clinicHours(cfg),
	}
}

func clinicHours(cfg *config.Config) schedule.ClinicHours {
	return schedule.ClinicHours{
		OpenMinute:     cfg.Clinic.OpenHour * 60,
		CloseMinute:    cfg.Clinic.CloseHour * 60,
		SlotMinutes:    cfg.Clinic.SlotMinutes,
		ClosedWeekdays: cfg.Clinic.ClosedWeekdays,
	}
}

// sameDayAppointments loads every appointment on a date. The conflict check
// itself filters out inactive ones and the appointment being edited.
func (h *AppointmentHandler) sameDayAppointments(date string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := h.DB.Where("date = ?", date).Find(&appointments).Error
	return appointments, err
}

// checkBookingConflict runs the conflict check and writes the error response
// when the booking cannot proceed. Returns true when the caller must stop.
// Malformed scheduling input fails closed: it rejects the booking instead of
// letting a double booking through.
func (h *AppointmentHandler) checkBookingConflict(c *gin.Context, booking schedule.ProposedBooking, excludeID string) bool {
	candidates, err := h.sameDayAppointments(booking.Date)
	if err != nil {
		utils.InternalServerError(c, "Failed to load appointments for conflict check: "+err.Error())
		return true
	}

	conflict, err := schedule.CheckConflict(booking, excludeID, candidates)
	if err != nil {
		utils.BadRequest(c, "Invalid booking time: "+err.Error())
		return true
	}
	if conflict {
		utils.Conflict(c, "The requested time overlaps an existing appointment")
		return true
	}
	return false
}

// CreateAppointmentRequest represents the request body for creating an appointment.
type CreateAppointmentRequest struct {
	PatientID       string `json:"patientId" binding:"required,uuid"`
	DentistID       string `json:"dentistId" binding:"required,uuid"`
	Date            string `json:"date" binding:"required"` // YYYY-MM-DD
	Time            string `json:"time" binding:"required"` // HH:MM
	DurationMinutes int    `json:"durationMinutes" binding:"required,oneof=30 60 90 120"`
	Type            string `json:"type" binding:"required,oneof=consultation cleaning extraction orthodontics endodontics surgery checkup emergency"`
	Reason          string `json:"reason"`
	Notes           string `json:"notes"`
}

// CreateAppointment books a new appointment in the dentist flow. The booking
// is conflict-checked against every active appointment on the same date
// before the write; the check is advisory only, storage has no exclusion
// constraint.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", req.PatientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error verifying patient: "+err.Error())
		}
		return
	}

	var dentist models.User
	if err := h.DB.Where("id = ? AND role = ?", req.DentistID, models.RoleDentist).First(&dentist).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Dentist not found or user is not a dentist")
		} else {
			utils.InternalServerError(c, "Database error verifying dentist: "+err.Error())
		}
		return
	}

	booking := schedule.ProposedBooking{
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
	}
	if h.checkBookingConflict(c, booking, "") {
		return
	}

	appointment := models.Appointment{
		PatientID:       req.PatientID,
		DentistID:       req.DentistID,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		Type:            models.AppointmentType(req.Type),
		Status:          models.StatusScheduled,
		Reason:          req.Reason,
		Notes:           req.Notes,
	}

	if err := h.DB.Create(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to create appointment: "+err.Error())
		return
	}

	utils.Created(c, "Appointment created successfully", appointment)
}

// GetAppointments lists appointments for staff, optionally filtered by date,
// patient or dentist, ordered by date and time.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	query := h.DB.Preload("Patient").Order("date asc, time asc")

	if date := c.Query("date"); date != "" {
		if _, err := schedule.ParseLocalDate(date); err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
		query = query.Where("date = ?", date)
	}
	if from := c.Query("from"); from != "" {
		query = query.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("date <= ?", to)
	}
	if patientID := c.Query("patientId"); patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}
	if dentistID := c.Query("dentistId"); dentistID != "" {
		query = query.Where("dentist_id = ?", dentistID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	utils.Success(c, "Appointments fetched successfully", appointments)
}

// GetAppointmentByID handles fetching a single appointment by its ID.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	appointmentID := c.Param("id")

	var appointment models.Appointment
	if err := h.DB.Preload("Patient").First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Appointment fetched successfully", appointment)
}

// RescheduleAppointmentRequest represents the request body for rescheduling.
type RescheduleAppointmentRequest struct {
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	DurationMinutes int    `json:"durationMinutes" binding:"omitempty,oneof=30 60 90 120"`
	Notes           string `json:"notes"`
}

// RescheduleAppointment moves an appointment to a new date/time. The new
// window is conflict-checked with the appointment itself excluded, so moving
// within its own window always succeeds.
func (h *AppointmentHandler) RescheduleAppointment(c *gin.Context) {
	appointmentID := c.Param("id")

	var req RescheduleAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if !appointment.IsActive() {
		utils.BadRequest(c, "Cancelled or no-show appointments cannot be rescheduled")
		return
	}

	duration := appointment.DurationMinutes
	if req.DurationMinutes != 0 {
		duration = req.DurationMinutes
	}

	booking := schedule.ProposedBooking{
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: duration,
	}
	if h.checkBookingConflict(c, booking, appointment.ID) {
		return
	}

	appointment.Date = req.Date
	appointment.Time = req.Time
	appointment.DurationMinutes = duration
	appointment.Status = models.StatusScheduled
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}

	if err := h.DB.Save(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to reschedule appointment: "+err.Error())
		return
	}

	utils.Success(c, "Appointment rescheduled successfully", appointment)
}

// UpdateAppointmentStatusRequest represents the request body for updating status.
type UpdateAppointmentStatusRequest struct {
	Status models.AppointmentStatus `json:"status" binding:"required,oneof=requested scheduled confirmed in_progress completed cancelled no_show"`
	Notes  string                   `json:"notes"`
}

// UpdateAppointmentStatus handles status transitions. Moving an appointment
// back to an active status re-checks its window, since the slot may have
// been given away while it was cancelled.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	appointmentID := c.Param("id")

	var req UpdateAppointmentStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	reactivating := !appointment.IsActive() &&
		req.Status != models.StatusCancelled && req.Status != models.StatusNoShow
	if reactivating {
		booking := schedule.ProposedBooking{
			Date:            appointment.Date,
			Time:            appointment.Time,
			DurationMinutes: appointment.DurationMinutes,
		}
		if h.checkBookingConflict(c, booking, appointment.ID) {
			return
		}
	}

	appointment.Status = req.Status
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}

	if err := h.DB.Save(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to update appointment status: "+err.Error())
		return
	}

	utils.Success(c, "Appointment status updated successfully", appointment)
}

// DeleteAppointment hard-deletes an appointment. Only the dentist flow may
// do this; the portal cancels by status change instead.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	appointmentID := c.Param("id")

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&models.Appointment{}, "id = ?", appointmentID).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete appointment: "+err.Error())
		return
	}

	utils.Success(c, "Appointment deleted successfully", nil)
}

// GetAvailability returns the slot grid for a date, each slot marked free or
// taken based on active appointments.
func (h *AppointmentHandler) GetAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		utils.BadRequest(c, "date query parameter is required")
		return
	}
	date, err := schedule.ParseLocalDate(dateStr)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	candidates, err := h.sameDayAppointments(date.String())
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	slots := h.Hours.Slots(date, candidates)
	utils.Success(c, "Availability fetched successfully", gin.H{
		"date":  date.String(),
		"slots": slots,
	})
}

// CalendarCell is one date cell of a calendar response.
type CalendarCell struct {
	Date         string               `json:"date"`
	Appointments []models.Appointment `json:"appointments"`
}

// GetCalendar buckets appointments into the visible cells of a month, week
// or day view around a reference date.
func (h *AppointmentHandler) GetCalendar(c *gin.Context) {
	view, err := schedule.ParseView(c.DefaultQuery("view", string(schedule.ViewMonth)))
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	ref := schedule.DateOf(timeNow())
	if refStr := c.Query("date"); refStr != "" {
		ref, err = schedule.ParseLocalDate(refStr)
		if err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
	}

	var cells []schedule.LocalDate
	switch view {
	case schedule.ViewMonth:
		cells = schedule.MonthGrid(ref)
	case schedule.ViewWeek:
		cells = schedule.WeekDays(ref)
	default:
		cells = []schedule.LocalDate{ref}
	}

	var appointments []models.Appointment
	err = h.DB.Preload("Patient").
		Where("date >= ? AND date <= ?", cells[0].String(), cells[len(cells)-1].String()).
		Order("date asc, time asc").
		Find(&appointments).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	buckets := schedule.Bucket(appointments, cells)
	result := make([]CalendarCell, len(cells))
	for i, cell := range cells {
		result[i] = CalendarCell{Date: cell.String(), Appointments: buckets[cell.String()]}
	}

	response := gin.H{
		"view":  view,
		"date":  ref.String(),
		"cells": result,
	}
	if view == schedule.ViewDay {
		// The day view also renders the half-hour grid.
		response["slots"] = h.Hours.Slots(ref, appointments)
	}

	utils.Success(c, "Calendar fetched successfully", response)
}

// resolvePatientForUser finds the clinic chart linked to a portal account.
func resolvePatientForUser(db *gorm.DB, c *gin.Context) (*models.Patient, bool) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return nil, false
	}

	var patient models.Patient
	if err := db.First(&patient, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "No patient chart is linked to this account")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return nil, false
	}
	return &patient, true
}
