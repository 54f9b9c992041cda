package models

import "time"

// ===============================
// Medical Result Type
// ===============================

type ResultType string

const (
	ResultXRay       ResultType = "xray"
	ResultCT         ResultType = "ct"
	ResultPhoto      ResultType = "photo"
	ResultConclusion ResultType = "conclusion"
)

func (t ResultType) Valid() bool {
	switch t {
	case ResultXRay, ResultCT, ResultPhoto, ResultConclusion:
		return true
	}
	return false
}

type MedicalResult struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint `gorm:"index" json:"patient_id"`
	DoctorID  uint `gorm:"index" json:"doctor_id"`

	ResultType  ResultType `gorm:"size:20" json:"result_type"`
	Title       string     `gorm:"size:150;not null" json:"title"`
	Description *string    `gorm:"size:1000" json:"description"`
	FileURL     string     `gorm:"size:255;not null" json:"file_url"`

	CreatedAt time.Time `json:"created_at"`
}
