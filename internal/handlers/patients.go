package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/utils"
)

// PatientHandler handles clinic chart requests (staff side).
type PatientHandler struct {
	DB *gorm.DB
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(db *gorm.DB) *PatientHandler {
	return &PatientHandler{DB: db}
}

// PatientRequest represents the request body for creating or updating a chart.
type PatientRequest struct {
	FirstName      string     `json:"firstName" binding:"required"`
	LastName       string     `json:"lastName" binding:"required"`
	DateOfBirth    *time.Time `json:"dateOfBirth"`
	PhoneNumber    string     `json:"phoneNumber"`
	Email          string     `json:"email" binding:"omitempty,email"`
	Address        string     `json:"address"`
	Allergies      string     `json:"allergies"`
	MedicalHistory string     `json:"medicalHistory"`
}

// CreatePatient registers a new clinic chart (walk-in patients have no
// portal account; the chart stands alone until one is linked).
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req PatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patient := models.Patient{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DateOfBirth:    req.DateOfBirth,
		PhoneNumber:    req.PhoneNumber,
		Email:          req.Email,
		Address:        req.Address,
		Allergies:      req.Allergies,
		MedicalHistory: req.MedicalHistory,
	}

	if err := h.DB.Create(&patient).Error; err != nil {
		utils.InternalServerError(c, "Failed to create patient: "+err.Error())
		return
	}

	utils.Created(c, "Patient created successfully", patient)
}

// GetPatients lists all charts, optionally filtered by a name/email search term.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	query := h.DB.Order("last_name asc, first_name asc")

	if term := c.Query("search"); term != "" {
		like := "%" + term + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ?", like, like, like)
	}

	var patients []models.Patient
	if err := query.Find(&patients).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch patients: "+err.Error())
		return
	}

	utils.Success(c, "Patients fetched successfully", patients)
}

// GetPatientByID fetches a single chart.
func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	patientID := c.Param("id")

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", patientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Patient fetched successfully", patient)
}

// UpdatePatient updates a chart.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	patientID := c.Param("id")

	var req PatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", patientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	patient.FirstName = req.FirstName
	patient.LastName = req.LastName
	patient.DateOfBirth = req.DateOfBirth
	patient.PhoneNumber = req.PhoneNumber
	patient.Email = req.Email
	patient.Address = req.Address
	patient.Allergies = req.Allergies
	patient.MedicalHistory = req.MedicalHistory

	if err := h.DB.Save(&patient).Error; err != nil {
		utils.InternalServerError(c, "Failed to update patient: "+err.Error())
		return
	}

	utils.Success(c, "Patient updated successfully", patient)
}

// DeletePatient removes a chart and everything hanging off it.
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	patientID := c.Param("id")

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", patientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Appointment{}, "patient_id = ?", patientID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.ToothRecord{}, "patient_id = ?", patientID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Consultation{}, "patient_id = ?", patientID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.PatientFile{}, "patient_id = ?", patientID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Patient{}, "id = ?", patientID).Error
	})
	if err != nil {
		utils.InternalServerError(c, "Failed to delete patient: "+err.Error())
		return
	}

	utils.Success(c, "Patient deleted successfully", nil)
}
