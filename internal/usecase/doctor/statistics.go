package doctor

import (
	"context"
	"math"
	"time"

	domain "github.com/dentalcare-app/clinic-api/internal/domain/appointment"
	"github.com/dentalcare-app/clinic-api/internal/models"
)

type Repository interface {
	DoctorByID(ctx context.Context, id uint) (*models.Doctor, error)
	AppointmentsByDoctor(ctx context.Context, doctorID uint) ([]models.Appointment, error)
	ReviewsByDoctor(ctx context.Context, doctorID uint) ([]models.Review, error)
}

type Statistics struct {
	DoctorID   uint   `json:"doctor_id"`
	DoctorName string `json:"doctor_name"`

	TotalAppointments     int `json:"total_appointments"`
	CompletedAppointments int `json:"completed_appointments"`
	UpcomingAppointments  int `json:"upcoming_appointments"`
	CancelledAppointments int `json:"cancelled_appointments"`

	// Average of live review ratings, rounded to two decimals. Falls back
	// to the profile rating when no reviews exist; null when neither is set.
	AverageRating  *float64 `json:"average_rating"`
	TotalReviews   int      `json:"total_reviews"`
	PatientsServed int      `json:"patients_served"`
}

// Stats aggregates a doctor's workload and reputation figures.
type Stats struct {
	repo Repository
	now  func() time.Time
}

func NewStats(repo Repository, now func() time.Time) *Stats {
	return &Stats{repo: repo, now: now}
}

func (uc *Stats) Execute(ctx context.Context, doctorID uint) (*Statistics, error) {
	now := uc.now()

	doc, err := uc.repo.DoctorByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.AppointmentsByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	reviews, err := uc.repo.ReviewsByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	st := &Statistics{
		DoctorID:          doc.ID,
		DoctorName:        doc.FullName(),
		TotalAppointments: len(appointments),
		TotalReviews:      len(reviews),
	}

	patients := make(map[uint]struct{})
	for _, ap := range appointments {
		patients[ap.PatientID] = struct{}{}

		switch status := domain.Status(ap.Status); {
		case status == domain.StatusCompleted:
			st.CompletedAppointments++
		case !status.Active():
			st.CancelledAppointments++
		case ap.ScheduledAt.After(now):
			st.UpcomingAppointments++
		}
	}
	st.PatientsServed = len(patients)

	if len(reviews) > 0 {
		var sum int
		for _, rv := range reviews {
			sum += rv.Rating
		}
		avg := math.Round(float64(sum)/float64(len(reviews))*100) / 100
		st.AverageRating = &avg
	} else if doc.Rating != nil {
		r := *doc.Rating
		st.AverageRating = &r
	}

	return st, nil
}
