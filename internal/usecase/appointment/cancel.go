package appointment

import (
	"context"
	"time"

	"github.com/dentalcare-app/clinic-api/internal/cache"
	domain "github.com/dentalcare-app/clinic-api/internal/domain/appointment"
	"github.com/dentalcare-app/clinic-api/internal/models"
	"github.com/dentalcare-app/clinic-api/internal/notification"
)

// Cancel ends an appointment on behalf of the patient or the clinic.
// Patient cancellations require 24h notice; cancelling frees the slot.
type Cancel struct {
	repo      domain.Repository
	notifier  *notification.Dispatcher
	slotCache *cache.SlotsCache
	now       func() time.Time
}

func NewCancel(
	repo domain.Repository,
	notifier *notification.Dispatcher,
	slotCache *cache.SlotsCache,
	now func() time.Time,
) *Cancel {
	return &Cancel{
		repo:      repo,
		notifier:  notifier,
		slotCache: slotCache,
		now:       now,
	}
}

func (uc *Cancel) Execute(ctx context.Context, id uint, actor domain.Actor) (*models.Appointment, error) {
	now := uc.now()

	ap, err := uc.repo.AppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap, actor, now); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.slotCache.Invalidate(ctx, ap.DoctorID)

	uc.notifier.Dispatch(notification.Event{
		Type:          notification.EventAppointmentCancelled,
		AppointmentID: ap.ID,
		PatientID:     ap.PatientID,
		DoctorID:      ap.DoctorID,
		ScheduledAt:   ap.ScheduledAt,
		CancelledBy:   actor,
	})

	return ap, nil
}
