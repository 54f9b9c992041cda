package appointment

import (
	"context"
	"time"

	"github.com/dentalcare-app/clinic-api/internal/cache"
	domain "github.com/dentalcare-app/clinic-api/internal/domain/appointment"
	"github.com/dentalcare-app/clinic-api/internal/models"
	"github.com/dentalcare-app/clinic-api/internal/notification"
)

type RescheduleInput struct {
	NewTime time.Time
}

// Reschedule moves a non-terminal appointment to a new time. The new time
// goes through the same booking policy as a fresh booking, and the conflict
// check ignores the appointment's own current slot.
type Reschedule struct {
	repo      domain.Repository
	notifier  *notification.Dispatcher
	slotCache *cache.SlotsCache
	now       func() time.Time
}

func NewReschedule(repo domain.Repository, notifier *notification.Dispatcher, slotCache *cache.SlotsCache, now func() time.Time) *Reschedule {
	return &Reschedule{
		repo:      repo,
		notifier:  notifier,
		slotCache: slotCache,
		now:       now,
	}
}

func (uc *Reschedule) Execute(ctx context.Context, id uint, in RescheduleInput) (*models.Appointment, error) {
	now := uc.now()

	ap, err := uc.repo.AppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	at := domain.Normalize(in.NewTime, now.Location())
	if err := domain.ValidateBookingTime(at, now); err != nil {
		return nil, err
	}

	oldTime := ap.ScheduledAt

	updated, err := uc.repo.ChangeAppointmentTime(ctx, id, at, now)
	if err != nil {
		return nil, err
	}

	uc.slotCache.Invalidate(ctx, updated.DoctorID)

	uc.notifier.Dispatch(notification.Event{
		Type:          notification.EventAppointmentRescheduled,
		AppointmentID: updated.ID,
		PatientID:     updated.PatientID,
		DoctorID:      updated.DoctorID,
		OldTime:       oldTime,
		NewTime:       updated.ScheduledAt,
	})

	return updated, nil
}
