package result

import (
	"context"
	"io"
	"time"

	"github.com/dentalcare-app/clinic-api/internal/blobstore"
	"github.com/dentalcare-app/clinic-api/internal/httperr"
	"github.com/dentalcare-app/clinic-api/internal/models"
	"github.com/dentalcare-app/clinic-api/internal/notification"
)

type Repository interface {
	PatientExists(ctx context.Context, id uint) (bool, error)
	DoctorByID(ctx context.Context, id uint) (*models.Doctor, error)
	CreateResult(ctx context.Context, res *models.MedicalResult) error
}

type UploadInput struct {
	PatientID uint
	DoctorID  uint

	ResultType  models.ResultType
	Title       string
	Description *string

	// Exactly one of File and FileURL is set. File goes through the image
	// pipeline and object storage; FileURL is stored as given.
	File    io.Reader
	FileURL string
}

// Upload attaches a medical result to a patient's record and notifies the
// patient.
type Upload struct {
	repo     Repository
	uploader *blobstore.Uploader
	notifier *notification.Dispatcher
	now      func() time.Time
}

func NewUpload(repo Repository, uploader *blobstore.Uploader, notifier *notification.Dispatcher, now func() time.Time) *Upload {
	return &Upload{
		repo:     repo,
		uploader: uploader,
		notifier: notifier,
		now:      now,
	}
}

func (uc *Upload) Execute(ctx context.Context, in UploadInput) (*models.MedicalResult, error) {
	now := uc.now()

	ok, err := uc.repo.PatientExists(ctx, in.PatientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusinessf(httperr.CodePatientNotFound, "patient %d does not exist", in.PatientID)
	}

	doc, err := uc.repo.DoctorByID(ctx, in.DoctorID)
	if err != nil {
		return nil, err
	}

	fileURL := in.FileURL
	if in.File != nil {
		fileURL, err = uc.uploader.UploadImage(ctx, in.File)
		if err != nil {
			return nil, err
		}
	}

	res := &models.MedicalResult{
		PatientID:   in.PatientID,
		DoctorID:    in.DoctorID,
		ResultType:  in.ResultType,
		Title:       in.Title,
		Description: in.Description,
		FileURL:     fileURL,
		CreatedAt:   now,
	}

	if err := uc.repo.CreateResult(ctx, res); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notification.Event{
		Type:        notification.EventResultUploaded,
		ResultID:    res.ID,
		PatientID:   res.PatientID,
		DoctorID:    res.DoctorID,
		DoctorName:  doc.FullName(),
		ResultTitle: res.Title,
	})

	return res, nil
}
