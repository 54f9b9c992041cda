package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/dentalcare-app/clinic-api/internal/domain/appointment"
	"github.com/dentalcare-app/clinic-api/internal/httperr"
	"github.com/dentalcare-app/clinic-api/internal/models"
	"github.com/dentalcare-app/clinic-api/internal/store"
)

// Store is the in-memory reference implementation. One coarse mutex
// serializes every operation, and the read-then-write checks (slot
// occupancy, one review per appointment) run inside single calls, so
// they are atomic with respect to all other mutations. Counters are
// owned by the store and live for its lifetime.
type Store struct {
	mu sync.Mutex

	doctors       map[uint]*models.Doctor
	patients      map[uint]*models.Patient
	appointments  map[uint]*models.Appointment
	results       map[uint]*models.MedicalResult
	services      map[uint]*models.Service
	reviews       map[uint]*models.Review
	notifications map[uint]*models.Notification

	nextAppointmentID  uint
	nextResultID       uint
	nextReviewID       uint
	nextNotificationID uint
}

func NewStore() *Store {
	return &Store{
		doctors:       make(map[uint]*models.Doctor),
		patients:      make(map[uint]*models.Patient),
		appointments:  make(map[uint]*models.Appointment),
		results:       make(map[uint]*models.MedicalResult),
		services:      make(map[uint]*models.Service),
		reviews:       make(map[uint]*models.Review),
		notifications: make(map[uint]*models.Notification),

		nextAppointmentID:  1,
		nextResultID:       1,
		nextReviewID:       1,
		nextNotificationID: 1,
	}
}

// ==================================================
// Directory
// ==================================================

// AddDoctor registers a doctor under its own id. Used by seeding and tests.
func (s *Store) AddDoctor(d models.Doctor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doctors[d.ID] = &d
}

func (s *Store) AddPatient(p models.Patient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patients[p.ID] = &p
}

func (s *Store) AddService(sv models.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services[sv.ID] = &sv
}

func (s *Store) DoctorExists(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.doctors[id]
	return ok, nil
}

func (s *Store) PatientExists(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.patients[id]
	return ok, nil
}

func (s *Store) DoctorByID(ctx context.Context, id uint) (*models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.doctors[id]
	if !ok {
		return nil, httperr.ErrBusinessf(httperr.CodeDoctorNotFound, "doctor %d does not exist", id)
	}
	cp := *d
	return &cp, nil
}

func (s *Store) PatientByID(ctx context.Context, id uint) (*models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.patients[id]
	if !ok {
		return nil, httperr.ErrBusinessf(httperr.CodePatientNotFound, "patient %d does not exist", id)
	}
	cp := *p
	return &cp, nil
}

func (s *Store) ListDoctors(ctx context.Context, specialization *models.Specialization) ([]models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Doctor, 0, len(s.doctors))
	for _, d := range s.doctors {
		if specialization != nil && d.Specialization != *specialization {
			continue
		}
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ==================================================
// Appointments
// ==================================================

// slotTakenLocked reports whether an active appointment of the doctor
// occupies the exact instant. excludeID skips the record being moved.
// Callers must hold s.mu.
func (s *Store) slotTakenLocked(doctorID uint, t time.Time, excludeID uint) bool {
	for _, ap := range s.appointments {
		if ap.ID == excludeID {
			continue
		}
		if ap.DoctorID != doctorID {
			continue
		}
		if !ap.ScheduledAt.Equal(t) {
			continue
		}
		if domain.Status(ap.Status).Active() {
			return true
		}
	}
	return false
}

func (s *Store) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slotTakenLocked(ap.DoctorID, ap.ScheduledAt, 0) {
		return httperr.ErrBusinessf(httperr.CodeSlotConflict, "the selected time is already taken")
	}

	ap.ID = s.nextAppointmentID
	s.nextAppointmentID++

	cp := *ap
	s.appointments[cp.ID] = &cp
	return nil
}

func (s *Store) AppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap, ok := s.appointments[id]
	if !ok {
		return nil, httperr.ErrBusinessf(httperr.CodeAppointmentNotFound, "appointment %d does not exist", id)
	}
	cp := *ap
	return &cp, nil
}

func (s *Store) SaveAppointment(ctx context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[ap.ID]; !ok {
		return httperr.ErrBusinessf(httperr.CodeAppointmentNotFound, "appointment %d does not exist", ap.ID)
	}
	cp := *ap
	s.appointments[cp.ID] = &cp
	return nil
}

func (s *Store) ChangeAppointmentTime(ctx context.Context, id uint, newTime, now time.Time) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap, ok := s.appointments[id]
	if !ok {
		return nil, httperr.ErrBusinessf(httperr.CodeAppointmentNotFound, "appointment %d does not exist", id)
	}

	if s.slotTakenLocked(ap.DoctorID, newTime, id) {
		return nil, httperr.ErrBusinessf(httperr.CodeSlotConflict, "the new time is already taken")
	}

	ap.ScheduledAt = newTime
	ap.UpdatedAt = now

	cp := *ap
	return &cp, nil
}

func (s *Store) ListAppointments(ctx context.Context, f domain.Filter) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Appointment, 0, len(s.appointments))
	for _, ap := range s.appointments {
		if f.PatientID != nil && ap.PatientID != *f.PatientID {
			continue
		}
		if f.DoctorID != nil && ap.DoctorID != *f.DoctorID {
			continue
		}
		if f.Status != nil && ap.Status != string(*f.Status) {
			continue
		}
		out = append(out, *ap)
	}
	sortAppointmentsAsc(out)
	return out, nil
}

func (s *Store) AppointmentsByDoctor(ctx context.Context, doctorID uint) ([]models.Appointment, error) {
	return s.ListAppointments(ctx, domain.Filter{DoctorID: &doctorID})
}

func (s *Store) AppointmentsByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	return s.ListAppointments(ctx, domain.Filter{PatientID: &patientID})
}

func sortAppointmentsAsc(apts []models.Appointment) {
	sort.Slice(apts, func(i, j int) bool {
		if !apts[i].ScheduledAt.Equal(apts[j].ScheduledAt) {
			return apts[i].ScheduledAt.Before(apts[j].ScheduledAt)
		}
		return apts[i].ID < apts[j].ID
	})
}

// ==================================================
// Medical results
// ==================================================

func (s *Store) CreateResult(ctx context.Context, res *models.MedicalResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res.ID = s.nextResultID
	s.nextResultID++

	cp := *res
	s.results[cp.ID] = &cp
	return nil
}

func (s *Store) ListResults(ctx context.Context, f store.ResultFilter) ([]models.MedicalResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.MedicalResult, 0)
	for _, r := range s.results {
		if r.PatientID != f.PatientID {
			continue
		}
		if f.Type != nil && r.ResultType != *f.Type {
			continue
		}
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *Store) ResultsByPatient(ctx context.Context, patientID uint) ([]models.MedicalResult, error) {
	return s.ListResults(ctx, store.ResultFilter{PatientID: patientID})
}

// ==================================================
// Services
// ==================================================

func (s *Store) ListServices(ctx context.Context, specialization *models.Specialization) ([]models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Service, 0, len(s.services))
	for _, sv := range s.services {
		if specialization != nil && (sv.Specialization == nil || *sv.Specialization != *specialization) {
			continue
		}
		out = append(out, *sv)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Price != out[j].Price {
			return out[i].Price < out[j].Price
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// ==================================================
// Reviews
// ==================================================

func (s *Store) CreateReview(ctx context.Context, rv *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.reviews {
		if existing.AppointmentID == rv.AppointmentID {
			return httperr.ErrBusinessf(httperr.CodeReviewExists, "appointment %d is already reviewed", rv.AppointmentID)
		}
	}

	rv.ID = s.nextReviewID
	s.nextReviewID++

	cp := *rv
	s.reviews[cp.ID] = &cp
	return nil
}

func (s *Store) ReviewsByDoctor(ctx context.Context, doctorID uint) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Review, 0)
	for _, rv := range s.reviews {
		if rv.DoctorID == doctorID {
			out = append(out, *rv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ReviewsByAppointment(ctx context.Context, appointmentID uint) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Review, 0)
	for _, rv := range s.reviews {
		if rv.AppointmentID == appointmentID {
			out = append(out, *rv)
		}
	}
	return out, nil
}

// ==================================================
// Notifications
// ==================================================

func (s *Store) CreateNotification(ctx context.Context, n *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = s.nextNotificationID
	s.nextNotificationID++

	cp := *n
	s.notifications[cp.ID] = &cp
	return nil
}

func (s *Store) NotificationsByUser(ctx context.Context, userID uint, unreadOnly bool) ([]models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Notification, 0)
	for _, n := range s.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *Store) MarkNotificationRead(ctx context.Context, id uint) (*models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return nil, httperr.ErrBusinessf(httperr.CodeNotificationNotFound, "notification %d does not exist", id)
	}

	n.IsRead = true
	cp := *n
	return &cp, nil
}

// ==================================================
// Stats
// ==================================================

func (s *Store) SystemCounts(ctx context.Context) (store.Counts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := store.Counts{
		Doctors:      len(s.doctors),
		Patients:     len(s.patients),
		Appointments: len(s.appointments),
		Results:      len(s.results),
	}
	for _, ap := range s.appointments {
		switch domain.Status(ap.Status) {
		case domain.StatusPending:
			c.PendingAppointments++
		case domain.StatusConfirmed:
			c.ConfirmedAppointments++
		}
	}
	return c, nil
}

// Compile-time check
var _ store.Store = (*Store)(nil)
