package appointment

import (
	"context"
	"time"

	"github.com/dentalcare-app/clinic-api/internal/cache"
	domain "github.com/dentalcare-app/clinic-api/internal/domain/appointment"
	"github.com/dentalcare-app/clinic-api/internal/httperr"
)

// Availability computes the near-term open slots for a doctor. The default
// horizon is cached per doctor; custom horizons always recompute.
type Availability struct {
	repo      domain.Repository
	slotCache *cache.SlotsCache
	now       func() time.Time
}

func NewAvailability(repo domain.Repository, slotCache *cache.SlotsCache, now func() time.Time) *Availability {
	return &Availability{
		repo:      repo,
		slotCache: slotCache,
		now:       now,
	}
}

func (uc *Availability) Execute(ctx context.Context, doctorID uint, daysAhead int) ([]time.Time, error) {
	now := uc.now()

	exists, err := uc.repo.DoctorExists(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.ErrBusinessf(httperr.CodeDoctorNotFound, "doctor %d does not exist", doctorID)
	}

	if daysAhead <= 0 {
		daysAhead = domain.DefaultDaysAhead
	}

	cacheable := daysAhead == domain.DefaultDaysAhead
	if cacheable {
		if slots, ok := uc.slotCache.Get(ctx, doctorID); ok {
			return slots, nil
		}
	}

	existing, err := uc.repo.AppointmentsByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	occupied := make(map[int64]bool, len(existing))
	for _, ap := range existing {
		if domain.Status(ap.Status).Active() {
			occupied[ap.ScheduledAt.Unix()] = true
		}
	}

	slots := domain.GenerateSlots(now, daysAhead, func(t time.Time) bool {
		return occupied[t.Unix()]
	})

	if cacheable {
		uc.slotCache.Set(ctx, doctorID, slots)
	}

	return slots, nil
}
