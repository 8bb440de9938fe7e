package models

import (
	"strings"
)

// Tooth numbering follows the universal system, 1 through 32.
const (
	MinToothNumber = 1
	MaxToothNumber = 32
)

// ToothCondition is a named condition flag on a tooth.
type ToothCondition string

const (
	ConditionHealthy          ToothCondition = "healthy"
	ConditionCaries           ToothCondition = "caries"
	ConditionCrown            ToothCondition = "crown"
	ConditionFilling          ToothCondition = "filling"
	ConditionRootCanal        ToothCondition = "root_canal"
	ConditionExtractionNeeded ToothCondition = "extraction_needed"
	ConditionExtracted        ToothCondition = "extracted"
	ConditionImplant          ToothCondition = "implant"
	ConditionFracture         ToothCondition = "fracture"
)

// KnownToothConditions lists every condition flag the chart accepts.
var KnownToothConditions = []ToothCondition{
	ConditionHealthy,
	ConditionCaries,
	ConditionCrown,
	ConditionFilling,
	ConditionRootCanal,
	ConditionExtractionNeeded,
	ConditionExtracted,
	ConditionImplant,
	ConditionFracture,
}

// IsKnownToothCondition reports whether s is one of the accepted flags.
func IsKnownToothCondition(s string) bool {
	for _, c := range KnownToothConditions {
		if string(c) == s {
			return true
		}
	}
	return false
}

// ToothRecord is one odontogram entry: the set of condition flags on a single
// tooth of a patient's chart. Conditions are stored as a comma-separated list.
// A "healthy" flag is mutually exclusive with every other flag; the handler
// enforces that at write time.
type ToothRecord struct {
	BaseModel
	PatientID   string `gorm:"size:36;index:idx_patient_tooth,unique" json:"patientId"`
	ToothNumber int    `gorm:"index:idx_patient_tooth,unique" json:"toothNumber"`
	Conditions  string `gorm:"size:255" json:"-"`
	Notes       string `gorm:"type:text" json:"notes,omitempty"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
}

// ConditionList returns the stored flags as a slice.
func (t *ToothRecord) ConditionList() []string {
	if t.Conditions == "" {
		return nil
	}
	return strings.Split(t.Conditions, ",")
}

// SetConditions stores the given flags, joined for the text column.
func (t *ToothRecord) SetConditions(conditions []string) {
	t.Conditions = strings.Join(conditions, ",")
}
