package patient

import (
	"context"
	"sort"
	"time"

	domain "github.com/dentalcare-app/clinic-api/internal/domain/appointment"
	"github.com/dentalcare-app/clinic-api/internal/models"
)

type Repository interface {
	PatientByID(ctx context.Context, id uint) (*models.Patient, error)
	AppointmentsByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error)
	ResultsByPatient(ctx context.Context, patientID uint) ([]models.MedicalResult, error)
}

type HistoryOutput struct {
	Patient *models.Patient `json:"patient"`

	// Appointments newest first, results newest first.
	Appointments []models.Appointment   `json:"appointments"`
	Results      []models.MedicalResult `json:"results"`

	TotalAppointments     int `json:"total_appointments"`
	CompletedAppointments int `json:"completed_appointments"`
	UpcomingAppointments  int `json:"upcoming_appointments"`
}

// History assembles a patient's full visit record: profile, appointment
// timeline and uploaded medical results.
type History struct {
	repo Repository
	now  func() time.Time
}

func NewHistory(repo Repository, now func() time.Time) *History {
	return &History{repo: repo, now: now}
}

func (uc *History) Execute(ctx context.Context, patientID uint) (*HistoryOutput, error) {
	now := uc.now()

	p, err := uc.repo.PatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.AppointmentsByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	sort.Slice(appointments, func(i, j int) bool {
		if !appointments[i].ScheduledAt.Equal(appointments[j].ScheduledAt) {
			return appointments[i].ScheduledAt.After(appointments[j].ScheduledAt)
		}
		return appointments[i].ID > appointments[j].ID
	})

	results, err := uc.repo.ResultsByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	out := &HistoryOutput{
		Patient:           p,
		Appointments:      appointments,
		Results:           results,
		TotalAppointments: len(appointments),
	}

	for _, ap := range appointments {
		status := domain.Status(ap.Status)
		if status == domain.StatusCompleted {
			out.CompletedAppointments++
		}
		if ap.ScheduledAt.After(now) && status.Active() && !status.Terminal() {
			out.UpcomingAppointments++
		}
	}

	return out, nil
}
