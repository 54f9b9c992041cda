package notification

import (
	"fmt"
	"time"

	domain "github.com/dentalcare-app/clinic-api/internal/domain/appointment"
	"github.com/dentalcare-app/clinic-api/internal/models"
)

// ===============================
// Lifecycle events
// ===============================

type EventType string

const (
	EventAppointmentConfirmed   EventType = "appointment_confirmed"
	EventAppointmentCancelled   EventType = "appointment_cancelled"
	EventAppointmentRescheduled EventType = "appointment_rescheduled"
	EventAppointmentCompleted   EventType = "appointment_completed"
	EventResultUploaded         EventType = "result_uploaded"
)

type Event struct {
	Type EventType

	AppointmentID uint
	ResultID      uint

	PatientID uint
	DoctorID  uint

	ScheduledAt time.Time

	// Cancellation only.
	CancelledBy domain.Actor

	// Reschedule only.
	OldTime time.Time
	NewTime time.Time

	// Result upload only.
	DoctorName  string
	ResultTitle string
}

const timeLayout = "02.01.2006 15:04"

// records renders the event into the notification rows it produces.
// Patients receive every event; a reschedule also notifies the doctor.
func (e Event) records(now time.Time) []models.Notification {
	related := e.AppointmentID

	switch e.Type {
	case EventAppointmentConfirmed:
		return []models.Notification{{
			UserID:           e.PatientID,
			NotificationType: models.NotifAppointmentConfirmed,
			Title:            "Appointment confirmed",
			Message:          fmt.Sprintf("Your appointment on %s has been confirmed", e.ScheduledAt.Format(timeLayout)),
			RelatedID:        &related,
			CreatedAt:        now,
		}}

	case EventAppointmentCancelled:
		msg := fmt.Sprintf("Your appointment on %s has been cancelled", e.ScheduledAt.Format(timeLayout))
		if e.CancelledBy == domain.ActorClinic {
			msg += " by the clinic"
		}
		return []models.Notification{{
			UserID:           e.PatientID,
			NotificationType: models.NotifAppointmentCancelled,
			Title:            "Appointment cancelled",
			Message:          msg,
			RelatedID:        &related,
			CreatedAt:        now,
		}}

	case EventAppointmentCompleted:
		return []models.Notification{{
			UserID:           e.PatientID,
			NotificationType: models.NotifAppointmentCompleted,
			Title:            "Visit completed",
			Message:          "Your visit has been completed, the medical conclusion is available",
			RelatedID:        &related,
			CreatedAt:        now,
		}}

	case EventAppointmentRescheduled:
		msg := fmt.Sprintf(
			"Appointment moved from %s to %s",
			e.OldTime.Format(timeLayout), e.NewTime.Format(timeLayout),
		)
		return []models.Notification{
			{
				UserID:           e.PatientID,
				NotificationType: models.NotifAppointmentRescheduled,
				Title:            "Appointment rescheduled",
				Message:          msg,
				RelatedID:        &related,
				CreatedAt:        now,
			},
			{
				UserID:           e.DoctorID,
				NotificationType: models.NotifAppointmentRescheduled,
				Title:            "Appointment rescheduled",
				Message:          msg,
				RelatedID:        &related,
				CreatedAt:        now,
			},
		}

	case EventResultUploaded:
		relatedResult := e.ResultID
		return []models.Notification{{
			UserID:           e.PatientID,
			NotificationType: models.NotifResultUploaded,
			Title:            "Examination result uploaded",
			Message:          fmt.Sprintf("Dr. %s uploaded a result: %s", e.DoctorName, e.ResultTitle),
			RelatedID:        &relatedResult,
			CreatedAt:        now,
		}}
	}

	return nil
}
