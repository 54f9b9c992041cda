package review

import (
	"context"
	"time"

	domain "github.com/dentalcare-app/clinic-api/internal/domain/appointment"
	"github.com/dentalcare-app/clinic-api/internal/httperr"
	"github.com/dentalcare-app/clinic-api/internal/models"
)

// Repository is the slice of storage the review flow needs.
type Repository interface {
	AppointmentByID(ctx context.Context, id uint) (*models.Appointment, error)
	CreateReview(ctx context.Context, rv *models.Review) error
}

type CreateInput struct {
	PatientID     uint
	AppointmentID uint
	// Optional cross-check; when set it must match the appointment's doctor.
	DoctorID *uint
	Rating   int
	Comment  *string
}

// Create records a rating for a completed appointment. Only the patient who
// attended may review, and each appointment accepts a single review.
type Create struct {
	repo Repository
	now  func() time.Time
}

func NewCreate(repo Repository, now func() time.Time) *Create {
	return &Create{repo: repo, now: now}
}

func (uc *Create) Execute(ctx context.Context, in CreateInput) (*models.Review, error) {
	now := uc.now()

	ap, err := uc.repo.AppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if domain.Status(ap.Status) != domain.StatusCompleted {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidTransition,
			"reviews require a completed appointment, current status is %q", ap.Status)
	}

	if ap.PatientID != in.PatientID {
		return nil, httperr.ErrBusinessf(httperr.CodeReviewForbidden,
			"only the patient who attended appointment %d may review it", ap.ID)
	}

	// The doctor is always taken from the appointment itself.
	if in.DoctorID != nil && *in.DoctorID != ap.DoctorID {
		return nil, httperr.ErrBusinessf(httperr.CodeReviewForbidden,
			"appointment %d belongs to doctor %d", ap.ID, ap.DoctorID)
	}

	rv := &models.Review{
		PatientID:     in.PatientID,
		DoctorID:      ap.DoctorID,
		AppointmentID: ap.ID,
		Rating:        in.Rating,
		Comment:       in.Comment,
		CreatedAt:     now,
	}

	// The store enforces one review per appointment atomically.
	if err := uc.repo.CreateReview(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}
