package appointment

import (
	"context"
	"time"

	domain "github.com/dentalcare-app/clinic-api/internal/domain/appointment"
	"github.com/dentalcare-app/clinic-api/internal/models"
	"github.com/dentalcare-app/clinic-api/internal/notification"
)

// Confirm moves a pending appointment to confirmed. Used by the front
// desk after a patient files a booking.
type Confirm struct {
	repo     domain.Repository
	notifier *notification.Dispatcher
	now      func() time.Time
}

func NewConfirm(repo domain.Repository, notifier *notification.Dispatcher, now func() time.Time) *Confirm {
	return &Confirm{
		repo:     repo,
		notifier: notifier,
		now:      now,
	}
}

func (uc *Confirm) Execute(ctx context.Context, id uint) (*models.Appointment, error) {
	now := uc.now()

	ap, err := uc.repo.AppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Confirm(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notification.Event{
		Type:          notification.EventAppointmentConfirmed,
		AppointmentID: ap.ID,
		PatientID:     ap.PatientID,
		DoctorID:      ap.DoctorID,
		ScheduledAt:   ap.ScheduledAt,
	})

	return ap, nil
}
