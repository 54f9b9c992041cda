package appointment

import (
	"context"
	"time"

	"github.com/dentalcare-app/clinic-api/internal/cache"
	domain "github.com/dentalcare-app/clinic-api/internal/domain/appointment"
	"github.com/dentalcare-app/clinic-api/internal/httperr"
	"github.com/dentalcare-app/clinic-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	PatientID uint
	DoctorID  uint

	ScheduledAt time.Time
	ServiceType string
	Notes       *string
}

// ======================================================
// USE CASE
// ======================================================

// Create books a new appointment in pending status. Validation order:
// patient exists, doctor exists, calendar rules, slot free.
type Create struct {
	repo      domain.Repository
	slotCache *cache.SlotsCache
	now       func() time.Time
}

func NewCreate(repo domain.Repository, slotCache *cache.SlotsCache, now func() time.Time) *Create {
	return &Create{
		repo:      repo,
		slotCache: slotCache,
		now:       now,
	}
}

func (uc *Create) Execute(ctx context.Context, in CreateInput) (*models.Appointment, error) {
	// One time reading per operation; every check below uses it.
	now := uc.now()

	ok, err := uc.repo.PatientExists(ctx, in.PatientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusinessf(httperr.CodePatientNotFound, "patient %d does not exist", in.PatientID)
	}

	ok, err = uc.repo.DoctorExists(ctx, in.DoctorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusinessf(httperr.CodeDoctorNotFound, "doctor %d does not exist", in.DoctorID)
	}

	at := domain.Normalize(in.ScheduledAt, now.Location())
	if err := domain.ValidateBookingTime(at, now); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		PatientID:   in.PatientID,
		DoctorID:    in.DoctorID,
		ScheduledAt: at,
		ServiceType: in.ServiceType,
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Occupancy check and insert are one atomic store call.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.slotCache.Invalidate(ctx, in.DoctorID)

	return ap, nil
}
