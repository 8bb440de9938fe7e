package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/utils"
)

// Uploads above this size are rejected before reading the file into memory.
const maxFileSizeBytes = 20 << 20 // 20 MiB

// FileHandler handles patient file storage requests.
type FileHandler struct {
	DB *gorm.DB
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(db *gorm.DB) *FileHandler {
	return &FileHandler{DB: db}
}

// UploadFile stores a file on a patient's chart. Expects multipart form data
// with a "file" field. Re-uploading the same filename replaces the content.
func (h *FileHandler) UploadFile(c *gin.Context) {
	patientID := c.Param("patientId")

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", patientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "A file field is required: "+err.Error())
		return
	}
	if fileHeader.Size > maxFileSizeBytes {
		utils.BadRequest(c, "File exceeds the 20 MiB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.InternalServerError(c, "Failed to open uploaded file: "+err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.InternalServerError(c, "Failed to read uploaded file: "+err.Error())
		return
	}

	fileType := fileHeader.Header.Get("Content-Type")
	if fileType == "" {
		fileType = http.DetectContentType(data)
	}

	var record models.PatientFile
	err = h.DB.Where("patient_id = ? AND file_name = ?", patientID, fileHeader.Filename).First(&record).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	record.PatientID = patientID
	record.FileName = fileHeader.Filename
	record.FileType = fileType
	record.FileData = data
	record.SizeBytes = int64(len(data))

	if err := h.DB.Save(&record).Error; err != nil {
		utils.InternalServerError(c, "Failed to store file: "+err.Error())
		return
	}

	// Never echo the blob back in the JSON envelope.
	utils.Created(c, "File uploaded successfully", gin.H{
		"id":        record.ID,
		"patientId": record.PatientID,
		"fileName":  record.FileName,
		"fileType":  record.FileType,
		"sizeBytes": record.SizeBytes,
	})
}

// ListFiles lists a patient's files without their content.
func (h *FileHandler) ListFiles(c *gin.Context) {
	patientID := c.Param("patientId")

	var files []models.PatientFile
	err := h.DB.Select("id", "patient_id", "file_name", "file_type", "size_bytes", "created_at", "updated_at").
		Where("patient_id = ?", patientID).
		Order("created_at desc").
		Find(&files).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch files: "+err.Error())
		return
	}

	utils.Success(c, "Files fetched successfully", files)
}

// DownloadFile streams a stored file back with its original MIME type.
func (h *FileHandler) DownloadFile(c *gin.Context) {
	fileID := c.Param("fileId")

	var record models.PatientFile
	if err := h.DB.First(&record, "id = ?", fileID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "File not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+record.FileName+`"`)
	c.Data(http.StatusOK, record.FileType, record.FileData)
}

// DeleteFile removes a stored file.
func (h *FileHandler) DeleteFile(c *gin.Context) {
	fileID := c.Param("fileId")

	result := h.DB.Delete(&models.PatientFile{}, "id = ?", fileID)
	if result.Error != nil {
		utils.InternalServerError(c, "Failed to delete file: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "File not found")
		return
	}

	utils.Success(c, "File deleted successfully", nil)
}
