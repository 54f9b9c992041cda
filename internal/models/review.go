package models

import "time"

// Review rates one completed appointment. At most one review may reference
// a given appointment.
type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID     uint `gorm:"index" json:"patient_id"`
	DoctorID      uint `gorm:"index" json:"doctor_id"`
	AppointmentID uint `gorm:"uniqueIndex" json:"appointment_id"`

	Rating  int     `json:"rating"`
	Comment *string `gorm:"size:1000" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}
