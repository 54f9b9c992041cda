package appointment

import (
	"context"
	"time"

	"github.com/dentalcare-app/clinic-api/internal/models"
)

// Filter narrows appointment listings. Nil fields match everything.
type Filter struct {
	PatientID *uint
	DoctorID  *uint
	Status    *Status
}

// Repository is the storage contract the lifecycle engine runs against.
//
// Conflict-sensitive mutations are single calls: CreateAppointment and
// ChangeAppointmentTime perform their slot-occupancy check and the
// write atomically inside the store (coarse lock in memory, row lock in
// Postgres), returning a slot_conflict business error when the target
// (doctor, instant) is held by another active appointment.
// ChangeAppointmentTime excludes the appointment being moved from its
// own conflict check.
type Repository interface {
	DoctorExists(ctx context.Context, id uint) (bool, error)
	PatientExists(ctx context.Context, id uint) (bool, error)

	AppointmentByID(ctx context.Context, id uint) (*models.Appointment, error)
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	SaveAppointment(ctx context.Context, ap *models.Appointment) error
	ChangeAppointmentTime(ctx context.Context, id uint, newTime, now time.Time) (*models.Appointment, error)

	// Sorted by scheduled time ascending.
	ListAppointments(ctx context.Context, f Filter) ([]models.Appointment, error)
	AppointmentsByDoctor(ctx context.Context, doctorID uint) ([]models.Appointment, error)
	AppointmentsByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error)
}
