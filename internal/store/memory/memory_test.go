package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/dentalcare-app/clinic-api/internal/domain/appointment"
	"github.com/dentalcare-app/clinic-api/internal/httperr"
	"github.com/dentalcare-app/clinic-api/internal/models"
	"github.com/dentalcare-app/clinic-api/internal/store"
)

var slotA = time.Date(2025, 11, 5, 14, 30, 0, 0, time.UTC)

func newTestStore() *Store {
	s := NewStore()
	s.AddDoctor(models.Doctor{ID: 1, FirstName: "Anna", LastName: "Ivanova", Specialization: models.SpecOrthodontist})
	s.AddDoctor(models.Doctor{ID: 2, FirstName: "Dmitry", LastName: "Petrov", Specialization: models.SpecSurgeon})
	s.AddPatient(models.Patient{ID: 1, FirstName: "Ivan", LastName: "Sidorov", Phone: "+7-900-000-00-01"})
	return s
}

func mustCreate(t *testing.T, s *Store, doctorID uint, at time.Time, status domain.Status) *models.Appointment {
	t.Helper()
	ap := &models.Appointment{
		PatientID:   1,
		DoctorID:    doctorID,
		ScheduledAt: at,
		Status:      string(status),
	}
	require.NoError(t, s.CreateAppointment(context.Background(), ap))
	return ap
}

func TestCreateAppointmentAssignsMonotonicIDs(t *testing.T) {
	s := newTestStore()

	first := mustCreate(t, s, 1, slotA, domain.StatusPending)
	second := mustCreate(t, s, 1, slotA.Add(30*time.Minute), domain.StatusPending)

	require.Equal(t, uint(1), first.ID)
	require.Equal(t, uint(2), second.ID)
}

func TestCreateAppointmentSlotConflict(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	mustCreate(t, s, 1, slotA, domain.StatusPending)

	dup := &models.Appointment{PatientID: 1, DoctorID: 1, ScheduledAt: slotA, Status: "pending"}
	err := s.CreateAppointment(ctx, dup)
	require.True(t, httperr.IsBusiness(err, httperr.CodeSlotConflict))
	require.Zero(t, dup.ID)

	// Another doctor at the same instant is fine.
	other := &models.Appointment{PatientID: 1, DoctorID: 2, ScheduledAt: slotA, Status: "pending"}
	require.NoError(t, s.CreateAppointment(ctx, other))
}

func TestCancelledSlotIsFree(t *testing.T) {
	s := newTestStore()

	mustCreate(t, s, 1, slotA, domain.StatusCancelledByPatient)

	again := &models.Appointment{PatientID: 1, DoctorID: 1, ScheduledAt: slotA, Status: "pending"}
	require.NoError(t, s.CreateAppointment(context.Background(), again))
}

func TestChangeAppointmentTime(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	now := slotA.Add(-48 * time.Hour)

	ap := mustCreate(t, s, 1, slotA, domain.StatusPending)
	other := mustCreate(t, s, 1, slotA.Add(time.Hour), domain.StatusPending)

	t.Run("own slot is excluded from the conflict check", func(t *testing.T) {
		got, err := s.ChangeAppointmentTime(ctx, ap.ID, slotA, now)
		require.NoError(t, err)
		require.True(t, got.ScheduledAt.Equal(slotA))
	})

	t.Run("occupied target rejected", func(t *testing.T) {
		_, err := s.ChangeAppointmentTime(ctx, ap.ID, other.ScheduledAt, now)
		require.True(t, httperr.IsBusiness(err, httperr.CodeSlotConflict))
	})

	t.Run("moves and stamps", func(t *testing.T) {
		target := slotA.Add(2 * time.Hour)
		got, err := s.ChangeAppointmentTime(ctx, ap.ID, target, now)
		require.NoError(t, err)
		require.True(t, got.ScheduledAt.Equal(target))
		require.Equal(t, now, got.UpdatedAt)

		stored, err := s.AppointmentByID(ctx, ap.ID)
		require.NoError(t, err)
		require.True(t, stored.ScheduledAt.Equal(target))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := s.ChangeAppointmentTime(ctx, 999, slotA, now)
		require.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))
	})
}

func TestListAppointmentsFilterAndOrder(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	late := mustCreate(t, s, 1, slotA.Add(2*time.Hour), domain.StatusPending)
	early := mustCreate(t, s, 1, slotA, domain.StatusConfirmed)
	mustCreate(t, s, 2, slotA, domain.StatusPending)

	all, err := s.ListAppointments(ctx, domain.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.True(t, all[0].ScheduledAt.Equal(slotA))

	doctorID := uint(1)
	byDoctor, err := s.ListAppointments(ctx, domain.Filter{DoctorID: &doctorID})
	require.NoError(t, err)
	require.Len(t, byDoctor, 2)
	require.Equal(t, early.ID, byDoctor[0].ID)
	require.Equal(t, late.ID, byDoctor[1].ID)

	status := domain.StatusConfirmed
	confirmed, err := s.ListAppointments(ctx, domain.Filter{Status: &status})
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	require.Equal(t, early.ID, confirmed[0].ID)
}

func TestSaveAppointmentCopiesIn(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	ap := mustCreate(t, s, 1, slotA, domain.StatusPending)
	ap.Status = string(domain.StatusConfirmed)
	require.NoError(t, s.SaveAppointment(ctx, ap))

	// Mutating the caller's copy afterwards must not leak into the store.
	ap.Status = "garbage"
	stored, err := s.AppointmentByID(ctx, ap.ID)
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusConfirmed), stored.Status)
}

func TestCreateReviewUniquePerAppointment(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	rv := &models.Review{PatientID: 1, DoctorID: 1, AppointmentID: 7, Rating: 5}
	require.NoError(t, s.CreateReview(ctx, rv))
	require.Equal(t, uint(1), rv.ID)

	dup := &models.Review{PatientID: 1, DoctorID: 1, AppointmentID: 7, Rating: 4}
	err := s.CreateReview(ctx, dup)
	require.True(t, httperr.IsBusiness(err, httperr.CodeReviewExists))

	next := &models.Review{PatientID: 1, DoctorID: 1, AppointmentID: 8, Rating: 4}
	require.NoError(t, s.CreateReview(ctx, next))
	require.Equal(t, uint(2), next.ID)
}

func TestListResultsNewestFirst(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	base := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	old := &models.MedicalResult{PatientID: 1, DoctorID: 1, ResultType: models.ResultXRay, Title: "old", CreatedAt: base}
	recent := &models.MedicalResult{PatientID: 1, DoctorID: 1, ResultType: models.ResultPhoto, Title: "recent", CreatedAt: base.Add(time.Hour)}
	require.NoError(t, s.CreateResult(ctx, old))
	require.NoError(t, s.CreateResult(ctx, recent))

	all, err := s.ListResults(ctx, store.ResultFilter{PatientID: 1})
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "recent", all[0].Title)

	rt := models.ResultXRay
	xrays, err := s.ListResults(ctx, store.ResultFilter{PatientID: 1, Type: &rt})
	require.NoError(t, err)
	require.Len(t, xrays, 1)
	require.Equal(t, "old", xrays[0].Title)
}

func TestListServicesCheapestFirst(t *testing.T) {
	s := newTestStore()
	spec := models.SpecSurgeon
	s.AddService(models.Service{ID: 1, Name: "implant", Price: 45000, Specialization: &spec})
	s.AddService(models.Service{ID: 2, Name: "consultation", Price: 1500})

	all, err := s.ListServices(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "consultation", all[0].Name)

	surgical, err := s.ListServices(context.Background(), &spec)
	require.NoError(t, err)
	require.Len(t, surgical, 1)
	require.Equal(t, "implant", surgical[0].Name)
}

func TestNotifications(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	base := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	first := &models.Notification{UserID: 1, Title: "first", CreatedAt: base}
	second := &models.Notification{UserID: 1, Title: "second", CreatedAt: base.Add(time.Minute)}
	other := &models.Notification{UserID: 2, Title: "other", CreatedAt: base}
	require.NoError(t, s.CreateNotification(ctx, first))
	require.NoError(t, s.CreateNotification(ctx, second))
	require.NoError(t, s.CreateNotification(ctx, other))

	feed, err := s.NotificationsByUser(ctx, 1, false)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	require.Equal(t, "second", feed[0].Title)

	read, err := s.MarkNotificationRead(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, read.IsRead)

	unread, err := s.NotificationsByUser(ctx, 1, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	require.Equal(t, "second", unread[0].Title)

	_, err = s.MarkNotificationRead(ctx, 999)
	require.True(t, httperr.IsBusiness(err, httperr.CodeNotificationNotFound))
}

func TestSystemCounts(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	mustCreate(t, s, 1, slotA, domain.StatusPending)
	mustCreate(t, s, 1, slotA.Add(time.Hour), domain.StatusConfirmed)
	mustCreate(t, s, 2, slotA, domain.StatusCompleted)

	counts, err := s.SystemCounts(ctx)
	require.NoError(t, err)
	require.Equal(t, store.Counts{
		Doctors:               2,
		Patients:              1,
		Appointments:          3,
		PendingAppointments:   1,
		ConfirmedAppointments: 1,
	}, counts)
}
