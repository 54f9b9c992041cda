package doctor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/dentalcare-app/clinic-api/internal/domain/appointment"
	"github.com/dentalcare-app/clinic-api/internal/httperr"
	"github.com/dentalcare-app/clinic-api/internal/models"
	"github.com/dentalcare-app/clinic-api/internal/store/memory"
)

var testNow = time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func addAppointment(t *testing.T, s *memory.Store, patientID uint, at time.Time, status domain.Status) {
	t.Helper()
	require.NoError(t, s.CreateAppointment(context.Background(), &models.Appointment{
		PatientID:   patientID,
		DoctorID:    1,
		ScheduledAt: at,
		Status:      string(status),
	}))
}

func TestStatistics(t *testing.T) {
	s := memory.NewStore()
	s.AddDoctor(models.Doctor{ID: 1, FirstName: "Anna", LastName: "Ivanova"})

	addAppointment(t, s, 1, testNow.Add(-72*time.Hour), domain.StatusCompleted)
	addAppointment(t, s, 1, testNow.Add(-48*time.Hour), domain.StatusCompleted)
	addAppointment(t, s, 2, testNow.Add(48*time.Hour), domain.StatusConfirmed)
	addAppointment(t, s, 2, testNow.Add(72*time.Hour), domain.StatusPending)
	addAppointment(t, s, 3, testNow.Add(96*time.Hour), domain.StatusCancelledByPatient)
	// Past but still pending: neither completed nor upcoming.
	addAppointment(t, s, 3, testNow.Add(-24*time.Hour), domain.StatusPending)

	ctx := context.Background()
	for i, rating := range []int{5, 5, 4} {
		require.NoError(t, s.CreateReview(ctx, &models.Review{
			PatientID: 1, DoctorID: 1, AppointmentID: uint(100 + i), Rating: rating,
		}))
	}

	st, err := NewStats(s, fixedNow).Execute(ctx, 1)
	require.NoError(t, err)

	require.Equal(t, "Anna Ivanova", st.DoctorName)
	require.Equal(t, 6, st.TotalAppointments)
	require.Equal(t, 2, st.CompletedAppointments)
	require.Equal(t, 2, st.UpcomingAppointments)
	require.Equal(t, 1, st.CancelledAppointments)
	require.Equal(t, 3, st.PatientsServed)
	require.Equal(t, 3, st.TotalReviews)

	require.NotNil(t, st.AverageRating)
	require.InDelta(t, 4.67, *st.AverageRating, 0.001)
}

func TestStatisticsRatingFallback(t *testing.T) {
	profile := 4.8
	s := memory.NewStore()
	s.AddDoctor(models.Doctor{ID: 1, FirstName: "Anna", LastName: "Ivanova", Rating: &profile})

	st, err := NewStats(s, fixedNow).Execute(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, st.AverageRating)
	require.Equal(t, profile, *st.AverageRating)
}

func TestStatisticsNoRatingAtAll(t *testing.T) {
	s := memory.NewStore()
	s.AddDoctor(models.Doctor{ID: 1, FirstName: "Anna", LastName: "Ivanova"})

	st, err := NewStats(s, fixedNow).Execute(context.Background(), 1)
	require.NoError(t, err)
	require.Nil(t, st.AverageRating)
	require.Zero(t, st.TotalAppointments)
}

func TestStatisticsUnknownDoctor(t *testing.T) {
	s := memory.NewStore()
	_, err := NewStats(s, fixedNow).Execute(context.Background(), 5)
	require.True(t, httperr.IsBusiness(err, httperr.CodeDoctorNotFound))
}
