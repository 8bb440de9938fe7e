package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dental-clinic-server/internal/config"
	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/schedule"
	"dental-clinic-server/internal/utils"
)

// Portal-initiated requests always book a single standard visit length.
const portalRequestDurationMinutes = 60

// PortalHandler serves the patient-facing flows. Patients only ever see
// their own chart; the chart is resolved from the authenticated account,
// never from a request parameter.
type PortalHandler struct {
	DB    *gorm.DB
	Hours schedule.ClinicHours
}

// NewPortalHandler creates a new PortalHandler.
func NewPortalHandler(db *gorm.DB, cfg *config.Config) *PortalHandler {
	return &PortalHandler{
		DB:    db,
		Hours: clinicHours(cfg),
	}
}

// GetMyChart returns the patient's own clinic chart.
func (h *PortalHandler) GetMyChart(c *gin.Context) {
	patient, ok := resolvePatientForUser(h.DB, c)
	if !ok {
		return
	}
	utils.Success(c, "Chart fetched successfully", patient)
}

// GetMyAppointments lists the patient's own appointments, newest date first.
func (h *PortalHandler) GetMyAppointments(c *gin.Context) {
	patient, ok := resolvePatientForUser(h.DB, c)
	if !ok {
		return
	}

	var appointments []models.Appointment
	if err := h.DB.Where("patient_id = ?", patient.ID).Order("date desc, time asc").Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	utils.Success(c, "Appointments fetched successfully", appointments)
}

// RequestAppointmentRequest represents the request body for a portal booking
// request. Duration is fixed; staff can adjust it when confirming.
type RequestAppointmentRequest struct {
	DentistID string `json:"dentistId" binding:"required,uuid"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=consultation cleaning checkup emergency"`
	Reason    string `json:"reason"`
}

// RequestAppointment books a patient-initiated appointment. It lands in
// requested status for staff to confirm, but still holds its window: the
// request is conflict-checked so two patients cannot grab the same slot.
func (h *PortalHandler) RequestAppointment(c *gin.Context) {
	patient, ok := resolvePatientForUser(h.DB, c)
	if !ok {
		return
	}

	var req RequestAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var dentist models.User
	if err := h.DB.Where("id = ? AND role = ?", req.DentistID, models.RoleDentist).First(&dentist).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Dentist not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	date, err := schedule.ParseLocalDate(req.Date)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if !h.Hours.IsOpenOn(date) {
		utils.BadRequest(c, "The clinic is closed on that day")
		return
	}

	booking := schedule.ProposedBooking{
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: portalRequestDurationMinutes,
	}

	var candidates []models.Appointment
	if err := h.DB.Where("date = ?", req.Date).Find(&candidates).Error; err != nil {
		utils.InternalServerError(c, "Failed to load appointments for conflict check: "+err.Error())
		return
	}
	conflict, err := schedule.CheckConflict(booking, "", candidates)
	if err != nil {
		utils.BadRequest(c, "Invalid booking time: "+err.Error())
		return
	}
	if conflict {
		utils.Conflict(c, "The requested time overlaps an existing appointment")
		return
	}

	appointment := models.Appointment{
		PatientID:       patient.ID,
		DentistID:       req.DentistID,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: portalRequestDurationMinutes,
		Type:            models.AppointmentType(req.Type),
		Status:          models.StatusRequested,
		Reason:          req.Reason,
	}

	if err := h.DB.Create(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to create appointment request: "+err.Error())
		return
	}

	utils.Created(c, "Appointment requested successfully", appointment)
}

// CancelAppointment cancels one of the patient's own appointments. The
// portal never hard-deletes: cancellation is a status change so the record
// stays in the history.
func (h *PortalHandler) CancelAppointment(c *gin.Context) {
	patient, ok := resolvePatientForUser(h.DB, c)
	if !ok {
		return
	}

	appointmentID := c.Param("id")

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ? AND patient_id = ?", appointmentID, patient.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	switch appointment.Status {
	case models.StatusRequested, models.StatusScheduled, models.StatusConfirmed:
		// cancellable
	default:
		utils.BadRequest(c, "Only requested, scheduled or confirmed appointments can be cancelled")
		return
	}

	appointment.Status = models.StatusCancelled
	if err := h.DB.Save(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to cancel appointment: "+err.Error())
		return
	}

	utils.Success(c, "Appointment cancelled successfully", appointment)
}

// GetAvailability exposes the slot grid to the portal booking form.
func (h *PortalHandler) GetAvailability(c *gin.Context) {
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

	var candidates []models.Appointment
	if err := h.DB.Where("date = ?", date.String()).Find(&candidates).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	utils.Success(c, "Availability fetched successfully", gin.H{
		"date":  date.String(),
		"slots": h.Hours.Slots(date, candidates),
	})
}

// GetMyOdontogram returns the patient's own dental chart, read-only.
func (h *PortalHandler) GetMyOdontogram(c *gin.Context) {
	patient, ok := resolvePatientForUser(h.DB, c)
	if !ok {
		return
	}

	var records []models.ToothRecord
	if err := h.DB.Where("patient_id = ?", patient.ID).Order("tooth_number asc").Find(&records).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch odontogram: "+err.Error())
		return
	}

	teeth := make([]ToothResponse, len(records))
	for i := range records {
		teeth[i] = toothResponse(&records[i])
	}

	utils.Success(c, "Odontogram fetched successfully", gin.H{
		"patientId": patient.ID,
		"teeth":     teeth,
	})
}

// GetMyConsultations returns the patient's own consultation notes.
func (h *PortalHandler) GetMyConsultations(c *gin.Context) {
	patient, ok := resolvePatientForUser(h.DB, c)
	if !ok {
		return
	}

	var consultations []models.Consultation
	if err := h.DB.Where("patient_id = ?", patient.ID).Order("date desc").Find(&consultations).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch consultations: "+err.Error())
		return
	}

	utils.Success(c, "Consultations fetched successfully", consultations)
}

// GetMyFiles lists the patient's own files without their content.
func (h *PortalHandler) GetMyFiles(c *gin.Context) {
	patient, ok := resolvePatientForUser(h.DB, c)
	if !ok {
		return
	}

	var files []models.PatientFile
	err := h.DB.Select("id", "patient_id", "file_name", "file_type", "size_bytes", "created_at", "updated_at").
		Where("patient_id = ?", patient.ID).
		Order("created_at desc").
		Find(&files).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch files: "+err.Error())
		return
	}

	utils.Success(c, "Files fetched successfully", files)
}

// DownloadMyFile streams one of the patient's own files.
func (h *PortalHandler) DownloadMyFile(c *gin.Context) {
	patient, ok := resolvePatientForUser(h.DB, c)
	if !ok {
		return
	}

	var record models.PatientFile
	if err := h.DB.First(&record, "id = ? AND patient_id = ?", c.Param("fileId"), patient.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "File not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+record.FileName+`"`)
	c.Data(200, record.FileType, record.FileData)
}
