package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/dentalcare-app/clinic-api/internal/domain/appointment"
	"github.com/dentalcare-app/clinic-api/internal/models"
)

var testNow = time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)

type memorySink struct {
	records []models.Notification
}

func (m *memorySink) CreateNotification(_ context.Context, n *models.Notification) error {
	m.records = append(m.records, *n)
	return nil
}

func TestDispatcherPersistsEvents(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink, func() time.Time { return testNow })

	at := time.Date(2025, 1, 8, 14, 30, 0, 0, time.UTC)
	d.Dispatch(Event{
		Type:          EventAppointmentConfirmed,
		AppointmentID: 5,
		PatientID:     1,
		DoctorID:      2,
		ScheduledAt:   at,
	})
	d.Close()

	require.Len(t, sink.records, 1)
	n := sink.records[0]
	require.Equal(t, uint(1), n.UserID)
	require.Equal(t, models.NotifAppointmentConfirmed, n.NotificationType)
	require.Contains(t, n.Message, "08.01.2025 14:30")
	require.Equal(t, uint(5), *n.RelatedID)
	require.Equal(t, testNow, n.CreatedAt)
}

func TestRescheduleNotifiesBothParties(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink, func() time.Time { return testNow })

	d.Dispatch(Event{
		Type:          EventAppointmentRescheduled,
		AppointmentID: 5,
		PatientID:     1,
		DoctorID:      2,
		OldTime:       time.Date(2025, 1, 8, 14, 30, 0, 0, time.UTC),
		NewTime:       time.Date(2025, 1, 9, 9, 0, 0, 0, time.UTC),
	})
	d.Close()

	require.Len(t, sink.records, 2)
	require.Equal(t, uint(1), sink.records[0].UserID)
	require.Equal(t, uint(2), sink.records[1].UserID)
	for _, n := range sink.records {
		require.Equal(t, models.NotifAppointmentRescheduled, n.NotificationType)
		require.Contains(t, n.Message, "08.01.2025 14:30")
		require.Contains(t, n.Message, "09.01.2025 09:00")
	}
}

func TestCancelledByClinicMessage(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink, func() time.Time { return testNow })

	d.Dispatch(Event{
		Type:          EventAppointmentCancelled,
		AppointmentID: 3,
		PatientID:     1,
		ScheduledAt:   time.Date(2025, 1, 8, 14, 30, 0, 0, time.UTC),
		CancelledBy:   domain.ActorClinic,
	})
	d.Close()

	require.Len(t, sink.records, 1)
	require.Contains(t, sink.records[0].Message, "by the clinic")
}

// A nil dispatcher is valid everywhere an operation may run without the
// notification feed wired up.
func TestNilDispatcherIsNoOp(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Type: EventAppointmentConfirmed})
	d.Close()
}
