package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dental-clinic-server/internal/middleware"
	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/utils"
)

// ConsultationHandler handles consultation note requests.
type ConsultationHandler struct {
	DB *gorm.DB
}

// NewConsultationHandler creates a new ConsultationHandler.
func NewConsultationHandler(db *gorm.DB) *ConsultationHandler {
	return &ConsultationHandler{DB: db}
}

// ConsultationRequest represents the request body for creating or updating a note.
type ConsultationRequest struct {
	PatientID     string     `json:"patientId" binding:"required,uuid"`
	AppointmentID *string    `json:"appointmentId" binding:"omitempty,uuid"`
	Date          *time.Time `json:"date"`
	Diagnosis     string     `json:"diagnosis"`
	Treatment     string     `json:"treatment"`
	Prescription  string     `json:"prescription"`
	Notes         string     `json:"notes"`
}

// CreateConsultation records a new consultation note. The treating dentist
// is the authenticated user.
func (h *ConsultationHandler) CreateConsultation(c *gin.Context) {
	var req ConsultationRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	dentistID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", req.PatientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if req.AppointmentID != nil {
		var appointment models.Appointment
		if err := h.DB.First(&appointment, "id = ? AND patient_id = ?", *req.AppointmentID, req.PatientID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				utils.NotFound(c, "Appointment not found for this patient")
			} else {
				utils.InternalServerError(c, "Database error: "+err.Error())
			}
			return
		}
	}

	date := timeNow()
	if req.Date != nil {
		date = *req.Date
	}

	consultation := models.Consultation{
		PatientID:     req.PatientID,
		DentistID:     dentistID,
		AppointmentID: req.AppointmentID,
		Date:          date,
		Diagnosis:     req.Diagnosis,
		Treatment:     req.Treatment,
		Prescription:  req.Prescription,
		Notes:         req.Notes,
	}

	if err := h.DB.Create(&consultation).Error; err != nil {
		utils.InternalServerError(c, "Failed to create consultation: "+err.Error())
		return
	}

	utils.Created(c, "Consultation created successfully", consultation)
}

// GetConsultationsForPatient lists a patient's notes, newest first.
func (h *ConsultationHandler) GetConsultationsForPatient(c *gin.Context) {
	patientID := c.Param("patientId")

	var consultations []models.Consultation
	if err := h.DB.Where("patient_id = ?", patientID).Order("date desc").Find(&consultations).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch consultations: "+err.Error())
		return
	}

	utils.Success(c, "Consultations fetched successfully", consultations)
}

// GetConsultationByID fetches a single note.
func (h *ConsultationHandler) GetConsultationByID(c *gin.Context) {
	consultationID := c.Param("id")

	var consultation models.Consultation
	if err := h.DB.First(&consultation, "id = ?", consultationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Consultation not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Consultation fetched successfully", consultation)
}

// UpdateConsultation edits a note. Only the dentist who wrote it or an
// admin may edit.
func (h *ConsultationHandler) UpdateConsultation(c *gin.Context) {
	consultationID := c.Param("id")

	var req ConsultationRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var consultation models.Consultation
	if err := h.DB.First(&consultation, "id = ?", consultationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Consultation not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	userRole, _ := middleware.GetUserRoleFromContext(c)
	if userRole != models.RoleAdmin && userID != consultation.DentistID {
		utils.Forbidden(c, "Only the authoring dentist or an admin can edit this note")
		return
	}

	if req.Date != nil {
		consultation.Date = *req.Date
	}
	consultation.Diagnosis = req.Diagnosis
	consultation.Treatment = req.Treatment
	consultation.Prescription = req.Prescription
	consultation.Notes = req.Notes

	if err := h.DB.Save(&consultation).Error; err != nil {
		utils.InternalServerError(c, "Failed to update consultation: "+err.Error())
		return
	}

	utils.Success(c, "Consultation updated successfully", consultation)
}

// DeleteConsultation removes a note. Same authorship rule as editing.
func (h *ConsultationHandler) DeleteConsultation(c *gin.Context) {
	consultationID := c.Param("id")

	var consultation models.Consultation
	if err := h.DB.First(&consultation, "id = ?", consultationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Consultation not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	userRole, _ := middleware.GetUserRoleFromContext(c)
	if userRole != models.RoleAdmin && userID != consultation.DentistID {
		utils.Forbidden(c, "Only the authoring dentist or an admin can delete this note")
		return
	}

	if err := h.DB.Delete(&models.Consultation{}, "id = ?", consultationID).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete consultation: "+err.Error())
		return
	}

	utils.Success(c, "Consultation deleted successfully", nil)
}
