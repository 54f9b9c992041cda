package store

import (
	"context"

	domain "github.com/dentalcare-app/clinic-api/internal/domain/appointment"
	"github.com/dentalcare-app/clinic-api/internal/models"
)

// ResultFilter narrows medical result listings for one patient.
type ResultFilter struct {
	PatientID uint
	Type      *models.ResultType
}

// Counts are system-wide totals for the stats endpoint.
type Counts struct {
	Doctors               int `json:"total_doctors"`
	Patients              int `json:"total_patients"`
	Appointments          int `json:"total_appointments"`
	PendingAppointments   int `json:"pending_appointments"`
	ConfirmedAppointments int `json:"confirmed_appointments"`
	Results               int `json:"total_results"`
}

// Store is the full storage surface of the clinic API: the lifecycle
// engine's repository plus the directory, records, reviews and
// notification collections. Implemented by store/memory (reference
// semantics, default driver) and infra/repository (Postgres).
type Store interface {
	domain.Repository

	// -------- Directory --------
	DoctorByID(ctx context.Context, id uint) (*models.Doctor, error)
	ListDoctors(ctx context.Context, specialization *models.Specialization) ([]models.Doctor, error)
	PatientByID(ctx context.Context, id uint) (*models.Patient, error)

	// -------- Medical results --------
	CreateResult(ctx context.Context, res *models.MedicalResult) error
	// Sorted by creation time descending.
	ListResults(ctx context.Context, f ResultFilter) ([]models.MedicalResult, error)
	ResultsByPatient(ctx context.Context, patientID uint) ([]models.MedicalResult, error)

	// -------- Services --------
	// Sorted by price ascending.
	ListServices(ctx context.Context, specialization *models.Specialization) ([]models.Service, error)

	// -------- Reviews --------
	// CreateReview fails with review_exists when the appointment is
	// already reviewed; the check and the write are atomic.
	CreateReview(ctx context.Context, rv *models.Review) error
	ReviewsByDoctor(ctx context.Context, doctorID uint) ([]models.Review, error)
	ReviewsByAppointment(ctx context.Context, appointmentID uint) ([]models.Review, error)

	// -------- Notifications --------
	CreateNotification(ctx context.Context, n *models.Notification) error
	// Sorted by creation time descending.
	NotificationsByUser(ctx context.Context, userID uint, unreadOnly bool) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id uint) (*models.Notification, error)

	// -------- Stats --------
	SystemCounts(ctx context.Context) (Counts, error)
}
