package models

import "time"

// ===============================
// Notification Type
// ===============================

type NotificationType string

const (
	NotifAppointmentConfirmed   NotificationType = "appointment_confirmed"
	NotifAppointmentReminder    NotificationType = "appointment_reminder"
	NotifAppointmentCancelled   NotificationType = "appointment_cancelled"
	NotifAppointmentRescheduled NotificationType = "appointment_rescheduled"
	NotifAppointmentCompleted   NotificationType = "appointment_completed"
	NotifResultUploaded         NotificationType = "result_uploaded"
)

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Recipient: a patient or a doctor id.
	UserID uint `gorm:"index" json:"user_id"`

	NotificationType NotificationType `gorm:"size:40" json:"notification_type"`

	Title   string `gorm:"size:150" json:"title"`
	Message string `gorm:"size:500" json:"message"`

	IsRead bool `gorm:"default:false" json:"is_read"`

	// ID of the related appointment or result, when there is one.
	RelatedID *uint `json:"related_id"`

	CreatedAt time.Time `json:"created_at"`
}
