package models

// PatientFile represents a file stored on a patient's chart (x-rays, signed
// consent forms, exported reports). Content is stored as binary data in the
// database rather than on disk.
type PatientFile struct {
	BaseModel
	PatientID string `gorm:"size:36;index:idx_patient_filename,unique" json:"patientId"`
	FileName  string `gorm:"size:255;not null;index:idx_patient_filename,unique" json:"fileName"`
	FileType  string `gorm:"size:100;not null" json:"fileType"`          // MIME type of the file
	FileData  []byte `json:"-" gorm:"type:longblob;not null"`            // File content as binary data (longblob for MySQL)
	SizeBytes int64  `gorm:"default:0" json:"sizeBytes"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
}
