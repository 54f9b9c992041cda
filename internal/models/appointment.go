package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint `gorm:"index" json:"patient_id"`
	DoctorID  uint `gorm:"index" json:"doctor_id"`

	// Minute granularity, clinic timezone. Slot identity is exact equality
	// on this instant, see domain/appointment.
	ScheduledAt time.Time `gorm:"index" json:"appointment_time"`

	ServiceType string `gorm:"size:150" json:"service_type"`

	Status string `gorm:"size:30;default:'pending'" json:"status"`

	Notes           *string `gorm:"size:1000" json:"notes"`
	Diagnosis       *string `gorm:"size:1000" json:"diagnosis"`
	Treatment       *string `gorm:"size:1000" json:"treatment"`
	Recommendations *string `gorm:"size:1000" json:"recommendations"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
