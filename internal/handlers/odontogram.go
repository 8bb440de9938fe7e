package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/utils"
)

// OdontogramHandler handles dental chart requests.
type OdontogramHandler struct {
	DB *gorm.DB
}

// NewOdontogramHandler creates a new OdontogramHandler.
func NewOdontogramHandler(db *gorm.DB) *OdontogramHandler {
	return &OdontogramHandler{DB: db}
}

// ToothResponse is the API shape of one odontogram entry.
type ToothResponse struct {
	ToothNumber int      `json:"toothNumber"`
	Conditions  []string `json:"conditions"`
	Notes       string   `json:"notes,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

func toothResponse(record *models.ToothRecord) ToothResponse {
	return ToothResponse{
		ToothNumber: record.ToothNumber,
		Conditions:  record.ConditionList(),
		Notes:       record.Notes,
		UpdatedAt:   record.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// validateToothConditions checks that every flag is known and that "healthy"
// stands alone: a healthy tooth cannot carry any other condition.
func validateToothConditions(conditions []string) error {
	hasHealthy := false
	for _, cond := range conditions {
		if !models.IsKnownToothCondition(cond) {
			return fmt.Errorf("unknown tooth condition: %s", cond)
		}
		if cond == string(models.ConditionHealthy) {
			hasHealthy = true
		}
	}
	if hasHealthy && len(conditions) > 1 {
		return fmt.Errorf("a healthy tooth cannot carry other condition flags")
	}
	return nil
}

func (h *OdontogramHandler) patientExists(c *gin.Context, patientID string) bool {
	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", patientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return false
	}
	return true
}

// GetOdontogram returns the full chart for a patient: an entry per tooth
// that has recorded conditions. Teeth without a record are implicitly
// unexamined.
func (h *OdontogramHandler) GetOdontogram(c *gin.Context) {
	patientID := c.Param("patientId")
	if !h.patientExists(c, patientID) {
		return
	}

	var records []models.ToothRecord
	if err := h.DB.Where("patient_id = ?", patientID).Order("tooth_number asc").Find(&records).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch odontogram: "+err.Error())
		return
	}

	teeth := make([]ToothResponse, len(records))
	for i := range records {
		teeth[i] = toothResponse(&records[i])
	}

	utils.Success(c, "Odontogram fetched successfully", gin.H{
		"patientId": patientID,
		"teeth":     teeth,
	})
}

// UpdateToothRequest represents the request body for setting tooth conditions.
type UpdateToothRequest struct {
	Conditions []string `json:"conditions" binding:"required"`
	Notes      string   `json:"notes"`
}

// UpdateTooth upserts the condition flags on one tooth. "healthy" excludes
// every other flag: setting it clears the rest, and combining it with other
// flags is rejected.
func (h *OdontogramHandler) UpdateTooth(c *gin.Context) {
	patientID := c.Param("patientId")
	toothNumber, err := strconv.Atoi(c.Param("tooth"))
	if err != nil || toothNumber < models.MinToothNumber || toothNumber > models.MaxToothNumber {
		utils.BadRequest(c, "Tooth number must be between 1 and 32")
		return
	}

	var req UpdateToothRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if err := validateToothConditions(req.Conditions); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if !h.patientExists(c, patientID) {
		return
	}

	var record models.ToothRecord
	err = h.DB.Where("patient_id = ? AND tooth_number = ?", patientID, toothNumber).First(&record).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	record.PatientID = patientID
	record.ToothNumber = toothNumber
	record.SetConditions(req.Conditions)
	record.Notes = req.Notes

	if err := h.DB.Save(&record).Error; err != nil {
		utils.InternalServerError(c, "Failed to update tooth record: "+err.Error())
		return
	}

	utils.Success(c, "Tooth record updated successfully", toothResponse(&record))
}

// ClearTooth removes the record for one tooth, returning it to unexamined.
func (h *OdontogramHandler) ClearTooth(c *gin.Context) {
	patientID := c.Param("patientId")
	toothNumber, err := strconv.Atoi(c.Param("tooth"))
	if err != nil || toothNumber < models.MinToothNumber || toothNumber > models.MaxToothNumber {
		utils.BadRequest(c, "Tooth number must be between 1 and 32")
		return
	}

	result := h.DB.Delete(&models.ToothRecord{}, "patient_id = ? AND tooth_number = ?", patientID, toothNumber)
	if result.Error != nil {
		utils.InternalServerError(c, "Failed to clear tooth record: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "No record for this tooth")
		return
	}

	utils.Success(c, "Tooth record cleared successfully", nil)
}
