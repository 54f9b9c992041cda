package appointment

import (
	"context"
	"time"

	domain "github.com/dentalcare-app/clinic-api/internal/domain/appointment"
	"github.com/dentalcare-app/clinic-api/internal/models"
	"github.com/dentalcare-app/clinic-api/internal/notification"
)

// Complete closes a confirmed appointment after the visit and records
// the medical conclusion.
type Complete struct {
	repo     domain.Repository
	notifier *notification.Dispatcher
	now      func() time.Time
}

func NewComplete(repo domain.Repository, notifier *notification.Dispatcher, now func() time.Time) *Complete {
	return &Complete{
		repo:     repo,
		notifier: notifier,
		now:      now,
	}
}

func (uc *Complete) Execute(ctx context.Context, id uint, out domain.Outcome) (*models.Appointment, error) {
	now := uc.now()

	ap, err := uc.repo.AppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Complete(ap, out, now); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notification.Event{
		Type:          notification.EventAppointmentCompleted,
		AppointmentID: ap.ID,
		PatientID:     ap.PatientID,
		DoctorID:      ap.DoctorID,
		ScheduledAt:   ap.ScheduledAt,
	})

	return ap, nil
}
