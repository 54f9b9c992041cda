package patient

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

func TestHistory(t *testing.T) {
	s := memory.NewStore()
	s.AddPatient(models.Patient{ID: 1, FirstName: "Ivan", LastName: "Sidorov", Phone: "+7-900-000-00-01"})
	ctx := context.Background()

	add := func(at time.Time, status domain.Status) {
		require.NoError(t, s.CreateAppointment(ctx, &models.Appointment{
			PatientID: 1, DoctorID: 1, ScheduledAt: at, Status: string(status),
		}))
	}
	add(testNow.Add(-72*time.Hour), domain.StatusCompleted)
	add(testNow.Add(48*time.Hour), domain.StatusConfirmed)
	add(testNow.Add(24*time.Hour), domain.StatusCancelledByClinic)

	require.NoError(t, s.CreateResult(ctx, &models.MedicalResult{
		PatientID: 1, DoctorID: 1, ResultType: models.ResultXRay, Title: "panoramic", CreatedAt: testNow.Add(-time.Hour),
	}))
	require.NoError(t, s.CreateResult(ctx, &models.MedicalResult{
		PatientID: 1, DoctorID: 1, ResultType: models.ResultConclusion, Title: "conclusion", CreatedAt: testNow,
	}))

	out, err := NewHistory(s, fixedNow).Execute(ctx, 1)
	require.NoError(t, err)

	require.Equal(t, "Ivan Sidorov", out.Patient.FullName())

	// Newest first on both timelines.
	require.Len(t, out.Appointments, 3)
	require.True(t, out.Appointments[0].ScheduledAt.After(out.Appointments[1].ScheduledAt))
	require.True(t, out.Appointments[1].ScheduledAt.After(out.Appointments[2].ScheduledAt))

	require.Len(t, out.Results, 2)
	require.Equal(t, "conclusion", out.Results[0].Title)

	require.Equal(t, 3, out.TotalAppointments)
	require.Equal(t, 1, out.CompletedAppointments)
	// The cancelled future visit is not upcoming.
	require.Equal(t, 1, out.UpcomingAppointments)
}

func TestHistoryUnknownPatient(t *testing.T) {
	s := memory.NewStore()
	_, err := NewHistory(s, fixedNow).Execute(context.Background(), 3)
	require.True(t, httperr.IsBusiness(err, httperr.CodePatientNotFound))
}
